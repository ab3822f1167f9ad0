package models

// View descriptors are what each screen renders from. The front end is a
// thin consumer: every field it shows is precomputed here, including the
// missing-asset indicators, so a lost image degrades to a visible message
// instead of a broken screen.

type MenuItemView struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceLabel   string  `json:"price_label"`
	ImageURL     string  `json:"image_url"`
	ImageMissing bool    `json:"image_missing"`
}

type CartView struct {
	Lines      []CartLine `json:"lines"`
	Total      float64    `json:"total"`
	TotalLabel string     `json:"total_label"`
	Empty      bool       `json:"empty"`
}

type MenuView struct {
	BannerURL        string         `json:"banner_url"`
	BannerMissing    bool           `json:"banner_missing"`
	Categories       []string       `json:"categories"`
	SelectedCategory string         `json:"selected_category"`
	Items            []MenuItemView `json:"items"`
	Cart             CartView       `json:"cart"`
}

type OrderLineView struct {
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
	TotalLabel string  `json:"total_label"`
}

type ReviewView struct {
	Lines      []OrderLineView `json:"lines"`
	Total      float64         `json:"total"`
	TotalLabel string          `json:"total_label"`
}

type ConfirmationView struct {
	OrderNumber int    `json:"order_number"`
	Message     string `json:"message"`
}
