package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/utils"
)

type CatalogController struct {
	Catalog *models.Catalog
}

func NewCatalogController(catalog *models.Catalog) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GetCatalog returns every category with its items.
func (cc *CatalogController) GetCatalog(c *gin.Context) {
	categories := make([]models.CatalogCategory, 0)
	for _, name := range cc.Catalog.Categories() {
		items, _ := cc.Catalog.Items(name)
		categories = append(categories, models.CatalogCategory{Name: name, Items: items})
	}
	utils.RespondJSON(c, http.StatusOK, "Menu catalog", categories)
}

// GetCategory returns the items of one category.
func (cc *CatalogController) GetCategory(c *gin.Context) {
	name := c.Param("category")
	items, ok := cc.Catalog.Items(name)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("unknown category"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Items in %s", name), models.CatalogCategory{Name: name, Items: items})
}
