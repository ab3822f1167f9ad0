package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delisburger/order-app/middlewares"
	"github.com/delisburger/order-app/services"
	"github.com/delisburger/order-app/utils"
)

type OrderController struct {
	Flow *services.OrderFlow
}

func NewOrderController(flow *services.OrderFlow) *OrderController {
	return &OrderController{Flow: flow}
}

type addItemRequest struct {
	Item string `json:"item" binding:"required"`
}

// GetScreen returns the session's current screen descriptor. On the menu
// page ?category= selects which item list to show.
func (oc *OrderController) GetScreen(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.Screen(session, c.Query("category"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current screen", screen)
}

// AddItem adds one of an item to the cart.
func (oc *OrderController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("field 'item' is required"))
		return
	}

	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.AddItem(session, req.Item)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%s has been added to your order", req.Item), screen)
}

// RemoveItem deletes a whole cart line.
func (oc *OrderController) RemoveItem(c *gin.Context) {
	item := c.Param("item")

	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.RemoveItem(session, item)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%s has been removed from your order", item), screen)
}

// ReviewOrder moves the session to the review page.
func (oc *OrderController) ReviewOrder(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.ReviewOrder(session)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review your order", screen)
}

// Back returns from review to the menu.
func (oc *OrderController) Back(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.Back(session)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Back to menu", screen)
}

// Pay finalizes the order and shows the confirmation screen. A failed
// ledger write is a 500 and the session stays on review.
func (oc *OrderController) Pay(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	result, err := oc.Flow.Pay(session)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order confirmed", result)
}

// Done acknowledges the confirmation and resets the session.
func (oc *OrderController) Done(c *gin.Context) {
	session := middlewares.SessionFromContext(c)
	screen, err := oc.Flow.Done(session)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "See you next time", screen)
}

// respondFlowError maps guard failures to 400 and everything else (ledger
// write failures, invariant violations) to 500.
func respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrUnknownItem),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrWrongPage),
		errors.Is(err, services.ErrNoOrder):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
