package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/delisburger/order-app/config"
	"github.com/delisburger/order-app/counter"
	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/router"
	"github.com/delisburger/order-app/services"
	"github.com/delisburger/order-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Duplicate item names across categories would make cart lookups
	// ambiguous, so a bad menu stops the process here.
	catalog, err := models.DefaultCatalog()
	if err != nil {
		utils.ErrorLogger.Fatalf("invalid menu: %v", err)
	}

	if _, err := os.Stat(cfg.ImgDir); err != nil {
		utils.ErrorLogger.Printf("image directory %s not found, menu images will show as missing", cfg.ImgDir)
	}

	store := services.NewExcelOrderStore(cfg.OrderFile)
	hub := counter.NewHub()
	flow := services.NewOrderFlow(catalog, store, hub, cfg.ImgDir)
	manager := services.NewSessionManager()

	r := router.SetupRouter(cfg, catalog, manager, flow, hub)
	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	utils.InfoLogger.Printf("orders will be saved to %s", store.Path())
	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
