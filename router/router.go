package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/delisburger/order-app/config"
	"github.com/delisburger/order-app/controllers"
	"github.com/delisburger/order-app/counter"
	"github.com/delisburger/order-app/middlewares"
	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/services"
)

func SetupRouter(cfg config.Config, catalog *models.Catalog, manager *services.SessionManager, flow *services.OrderFlow, hub *counter.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Menu images straight off disk; image extensions only.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/img/") {
			path := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(path, ".jpg") &&
				!strings.HasSuffix(path, ".jpeg") &&
				!strings.HasSuffix(path, ".png") &&
				!strings.HasSuffix(path, ".gif") &&
				!strings.HasSuffix(path, ".webp") {
				c.AbortWithStatus(403)
				return
			}
		}
		c.Next()
	})
	r.Static("/img", cfg.ImgDir)

	catalogCtrl := controllers.NewCatalogController(catalog)
	orderCtrl := controllers.NewOrderController(flow)
	counterCtrl := controllers.NewCounterController(hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Catalog is static and session-free.
	r.GET("/catalog", catalogCtrl.GetCatalog)
	r.GET("/catalog/:category", catalogCtrl.GetCategory)

	// Counter displays are not customer sessions.
	r.GET("/counter/ws", counterCtrl.Feed)

	// Everything the customer touches runs inside a session.
	session := r.Group("/")
	session.Use(middlewares.SessionMiddleware(manager))
	{
		session.GET("/screen", orderCtrl.GetScreen)
		session.POST("/cart/items", orderCtrl.AddItem)
		session.DELETE("/cart/items/:item", orderCtrl.RemoveItem)
		session.POST("/order/review", orderCtrl.ReviewOrder)
		session.POST("/order/back", orderCtrl.Back)
		session.POST("/order/pay", middlewares.NewPayRateLimiter(), orderCtrl.Pay)
		session.POST("/order/done", orderCtrl.Done)
	}

	return r
}
