package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/utils"
)

// Guard failures of the ordering flow. All of them leave the session exactly
// as it was and surface as a message on the current screen.
var (
	ErrEmptyCart     = errors.New("your cart is empty")
	ErrUnknownItem   = errors.New("item is not on the menu")
	ErrItemNotInCart = errors.New("item is not in your order")
	ErrWrongPage     = errors.New("action not available on this screen")
	ErrNoOrder       = errors.New("no order has been placed")
)

// OrderFeed receives every paid order, e.g. the counter display hub.
type OrderFeed interface {
	BroadcastOrderPaid(orderNumber int, total float64, lines []models.CartLine)
}

// Screen pairs a session's page with the view descriptor to render.
type Screen struct {
	Page models.Page `json:"page"`
	View interface{} `json:"view"`
}

// PayResult is the outcome of a successful payment.
type PayResult struct {
	Screen  Screen `json:"screen"`
	Warning string `json:"warning,omitempty"`
}

// OrderFlow drives the menu -> review -> confirmation state machine. Every
// method locks the session, checks the transition guard, and returns the
// next screen; a guard failure returns a sentinel error and changes nothing.
type OrderFlow struct {
	catalog *models.Catalog
	ledger  OrderLedger
	feed    OrderFeed
	imgDir  string
}

// NewOrderFlow wires the flow to its catalog, the order ledger and the image
// directory. feed may be nil when no counter display is attached.
func NewOrderFlow(catalog *models.Catalog, ledger OrderLedger, feed OrderFeed, imgDir string) *OrderFlow {
	return &OrderFlow{
		catalog: catalog,
		ledger:  ledger,
		feed:    feed,
		imgDir:  imgDir,
	}
}

// Catalog returns the menu the flow serves.
func (f *OrderFlow) Catalog() *models.Catalog {
	return f.catalog
}

// Screen renders the session's current page without changing state. On the
// menu page, category selects the item list to show.
func (f *OrderFlow) Screen(s *models.Session, category string) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	switch s.Page {
	case models.PageMenu:
		return f.menuScreen(s, category), nil
	case models.PageReview:
		return f.reviewScreen(s)
	case models.PageConfirmation:
		return f.confirmationScreen(s)
	}
	return Screen{}, fmt.Errorf("unknown page %q", s.Page)
}

// AddItem puts one more of a menu item in the cart. Menu page only.
func (f *OrderFlow) AddItem(s *models.Session, name string) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageMenu {
		return Screen{}, ErrWrongPage
	}
	category, _, ok := f.catalog.Lookup(name)
	if !ok {
		return Screen{}, ErrUnknownItem
	}
	qty := s.Cart.Add(name)
	utils.InfoLogger.Printf("session %s: added %q (now %dx)", s.ID, name, qty)
	return f.menuScreen(s, category), nil
}

// RemoveItem deletes a whole cart line, regardless of its quantity.
func (f *OrderFlow) RemoveItem(s *models.Session, name string) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageMenu {
		return Screen{}, ErrWrongPage
	}
	if !s.Cart.Remove(name) {
		return Screen{}, ErrItemNotInCart
	}
	utils.InfoLogger.Printf("session %s: removed %q", s.ID, name)
	return f.menuScreen(s, ""), nil
}

// ReviewOrder moves a non-empty cart to the review page.
func (f *OrderFlow) ReviewOrder(s *models.Session) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageMenu {
		return Screen{}, ErrWrongPage
	}
	if s.Cart.IsEmpty() {
		return Screen{}, ErrEmptyCart
	}
	s.Page = models.PageReview
	return f.reviewScreen(s)
}

// Back returns from review to the menu, cart untouched.
func (f *OrderFlow) Back(s *models.Session) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageReview {
		return Screen{}, ErrWrongPage
	}
	s.Page = models.PageMenu
	return f.menuScreen(s, ""), nil
}

// Pay finalizes the order: draw a number, append the cart to the ledger,
// then move to the confirmation page. The numbers are independent draws in
// [1000, 9999] with no uniqueness check against earlier orders; duplicates
// across orders are accepted, matching the counter workflow this replaces.
//
// The ledger write happens before the session advances. On a write failure
// the session stays on the review page with the cart intact and the error
// goes back to the customer; no order number is issued for an order that
// was never recorded.
func (f *OrderFlow) Pay(s *models.Session) (PayResult, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageReview {
		return PayResult{}, ErrWrongPage
	}
	if s.Cart.IsEmpty() {
		return PayResult{}, ErrEmptyCart
	}

	total, err := s.Cart.Total(f.catalog)
	if err != nil {
		return PayResult{}, err
	}

	orderNumber := drawOrderNumber()
	report, err := f.ledger.Append(s.Cart, orderNumber, f.catalog)
	if err != nil {
		utils.ErrorLogger.Printf("session %s: order #%d not saved: %v", s.ID, orderNumber, err)
		return PayResult{}, err
	}

	lines := s.Cart.Lines()
	s.OrderNumber = &orderNumber
	s.Page = models.PageConfirmation
	utils.InfoLogger.Printf("session %s: order #%d paid, %d lines, total %s", s.ID, orderNumber, report.RowsWritten, utils.FormatPrice(total))

	if f.feed != nil {
		f.feed.BroadcastOrderPaid(orderNumber, total, lines)
	}

	result := PayResult{}
	if report.Recovered {
		result.Warning = "the existing order file could not be read and was replaced"
	}
	screen, err := f.confirmationScreen(s)
	if err != nil {
		return PayResult{}, err
	}
	result.Screen = screen
	return result, nil
}

// Done acknowledges the confirmation screen and starts the session over.
func (f *OrderFlow) Done(s *models.Session) (Screen, error) {
	s.Lock()
	defer s.Unlock()

	if s.Page != models.PageConfirmation {
		return Screen{}, ErrWrongPage
	}
	if s.OrderNumber == nil {
		return Screen{}, ErrNoOrder
	}
	s.Reset()
	return f.menuScreen(s, ""), nil
}

func drawOrderNumber() int {
	return rand.IntN(9000) + 1000
}

// menuScreen builds the menu descriptor: banner, one category's items with
// per-item asset checks, and the sidebar cart. Callers hold the session
// lock. An empty or unknown category falls back to the first one.
func (f *OrderFlow) menuScreen(s *models.Session, category string) Screen {
	categories := f.catalog.Categories()
	items, ok := f.catalog.Items(category)
	if !ok {
		category = categories[0]
		items, _ = f.catalog.Items(category)
	}

	view := models.MenuView{
		BannerURL:        "/img/" + f.catalog.Banner(),
		BannerMissing:    f.assetMissing(f.catalog.Banner()),
		Categories:       categories,
		SelectedCategory: category,
		Items:            make([]models.MenuItemView, 0, len(items)),
		Cart:             f.cartView(s),
	}
	for _, item := range items {
		view.Items = append(view.Items, models.MenuItemView{
			Name:         item.Name,
			Price:        item.Price,
			PriceLabel:   utils.FormatPrice(item.Price),
			ImageURL:     "/img/" + item.Image,
			ImageMissing: f.assetMissing(item.Image),
		})
	}
	return Screen{Page: models.PageMenu, View: view}
}

func (f *OrderFlow) cartView(s *models.Session) models.CartView {
	total, err := s.Cart.Total(f.catalog)
	if err != nil {
		// Only reachable if a catalog edit raced a live cart; show zero
		// rather than tear down the screen.
		utils.ErrorLogger.Printf("session %s: %v", s.ID, err)
	}
	return models.CartView{
		Lines:      s.Cart.Lines(),
		Total:      total,
		TotalLabel: utils.FormatPrice(total),
		Empty:      s.Cart.IsEmpty(),
	}
}

func (f *OrderFlow) reviewScreen(s *models.Session) (Screen, error) {
	view := models.ReviewView{
		Lines: make([]models.OrderLineView, 0, s.Cart.Len()),
	}
	for _, line := range s.Cart.Lines() {
		_, item, ok := f.catalog.Lookup(line.Item)
		if !ok {
			return Screen{}, fmt.Errorf("cart item %q is not in the catalog", line.Item)
		}
		lineTotal := item.Price * float64(line.Quantity)
		view.Lines = append(view.Lines, models.OrderLineView{
			Item:       line.Item,
			Quantity:   line.Quantity,
			Price:      item.Price,
			Total:      lineTotal,
			TotalLabel: utils.FormatPrice(lineTotal),
		})
		view.Total += lineTotal
	}
	view.TotalLabel = utils.FormatPrice(view.Total)
	return Screen{Page: models.PageReview, View: view}, nil
}

func (f *OrderFlow) confirmationScreen(s *models.Session) (Screen, error) {
	if s.OrderNumber == nil {
		return Screen{}, ErrNoOrder
	}
	view := models.ConfirmationView{
		OrderNumber: *s.OrderNumber,
		Message:     "Thank you for your order! Please show this number at the counter.",
	}
	return Screen{Page: models.PageConfirmation, View: view}, nil
}

func (f *OrderFlow) assetMissing(name string) bool {
	if name == "" {
		return true
	}
	_, err := os.Stat(filepath.Join(f.imgDir, name))
	return err != nil
}
