package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/delisburger/order-app/config"
	"github.com/delisburger/order-app/counter"
	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/router"
	"github.com/delisburger/order-app/services"
)

// TestEndToEndOrdering walks the whole customer journey twice against one
// order file:
//  1. browse the menu, fill a cart (including a removed line), review, pay,
//     read the confirmation, press done
//  2. a second order from a fresh session
//
// and then checks the spreadsheet holds both orders' lines in order.
func TestEndToEndOrdering(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog, err := models.DefaultCatalog()
	require.NoError(t, err)

	tmp := t.TempDir()
	cfg := config.Config{
		Port:      "8080",
		ImgDir:    filepath.Join(tmp, "Img"),
		OrderFile: filepath.Join(tmp, "Order.xlsx"),
	}
	store := services.NewExcelOrderStore(cfg.OrderFile)
	hub := counter.NewHub()
	flow := services.NewOrderFlow(catalog, store, hub, cfg.ImgDir)
	manager := services.NewSessionManager()
	r := router.SetupRouter(cfg, catalog, manager, flow, hub)

	firstOrder := placeOrder(t, r, []string{"MEGA BURGER", "Milo", "Milo", "Salad"}, []string{"Salad"})
	secondOrder := placeOrder(t, r, []string{"Kebab"}, nil)

	// Both orders are in the file: header, then the first order's two
	// lines (Salad was removed before paying), then the second's one.
	f, err := excelize.OpenFile(cfg.OrderFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, services.OrderFileHeader, rows[0][:5])
	assert.Equal(t, "MEGA BURGER", rows[1][1])
	assert.Equal(t, "1", rows[1][2])
	assert.Equal(t, "Milo", rows[2][1])
	assert.Equal(t, "2", rows[2][2])
	assert.Equal(t, "Kebab", rows[3][1])

	for _, row := range rows[1:3] {
		assert.Equal(t, strconv.Itoa(firstOrder), row[0])
	}
	assert.Equal(t, strconv.Itoa(secondOrder), rows[3][0])
}

// placeOrder runs one session through menu -> review -> pay -> done and
// returns the issued order number. removes are applied after all adds.
func placeOrder(t *testing.T, r *gin.Engine, adds []string, removes []string) int {
	t.Helper()

	var cookies []*http.Cookie
	for _, item := range adds {
		body, _ := json.Marshal(map[string]string{"item": item})
		req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		if cookies == nil {
			cookies = w.Result().Cookies()
			require.NotEmpty(t, cookies)
		}
	}

	for _, item := range removes {
		req := httptest.NewRequest(http.MethodDelete, "/cart/items/"+item, nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := post(t, r, "/order/review", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = post(t, r, "/order/pay", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Screen struct {
				Page string `json:"page"`
				View struct {
					OrderNumber int `json:"order_number"`
				} `json:"view"`
			} `json:"screen"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmation", resp.Data.Screen.Page)
	number := resp.Data.Screen.View.OrderNumber
	assert.GreaterOrEqual(t, number, 1000)
	assert.LessOrEqual(t, number, 9999)

	w = post(t, r, "/order/done", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	return number
}

func post(t *testing.T, r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
