package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DELIS_IMG_DIR", "")
	t.Setenv("DELIS_ORDER_FILE", "")

	cfg := Load()
	workDir, _ := os.Getwd()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, filepath.Join(workDir, "Img"), cfg.ImgDir)
	assert.Equal(t, filepath.Join(workDir, "Order.xlsx"), cfg.OrderFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DELIS_IMG_DIR", "/srv/delis/images")
	t.Setenv("DELIS_ORDER_FILE", "/srv/delis/orders.xlsx")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/delis/images", cfg.ImgDir)
	assert.Equal(t, "/srv/delis/orders.xlsx", cfg.OrderFile)
}
