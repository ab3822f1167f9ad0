package models

// OrderRecord is one persisted order line: one row of the order file per
// (order, item) pair. Records are append-only; nothing updates or deletes
// them once written.
type OrderRecord struct {
	OrderNumber int     `json:"order_number"`
	Item        string  `json:"item"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}
