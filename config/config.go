package config

import (
	"os"
	"path/filepath"
)

// Config holds the few knobs the service has. Everything else follows the
// working-directory convention: images in Img/, orders in Order.xlsx.
type Config struct {
	Port      string
	ImgDir    string
	OrderFile string
}

func Load() Config {
	workDir, _ := os.Getwd()

	cfg := Config{
		Port:      getenv("PORT", "8080"),
		ImgDir:    os.Getenv("DELIS_IMG_DIR"),
		OrderFile: os.Getenv("DELIS_ORDER_FILE"),
	}
	if cfg.ImgDir == "" {
		cfg.ImgDir = filepath.Join(workDir, "Img")
	}
	if cfg.OrderFile == "" {
		cfg.OrderFile = filepath.Join(workDir, "Order.xlsx")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
