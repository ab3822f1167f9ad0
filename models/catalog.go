package models

import "fmt"

// CatalogItem is one orderable product. Price follows the menu-board
// convention of three fractional digits (Rp.12.000).
type CatalogItem struct {
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// CatalogCategory groups items for the sidebar selector.
type CatalogCategory struct {
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

type catalogEntry struct {
	category string
	item     CatalogItem
}

// Catalog is the static menu: categories and items in declaration order,
// plus a flat name index so price lookups never scan categories. Item names
// must be unique across the whole menu because the cart and the order file
// key lines by name alone.
type Catalog struct {
	banner     string
	categories []CatalogCategory
	index      map[string]catalogEntry
}

// NewCatalog builds the flat index and rejects duplicate item names up
// front, so a lookup miss later can only mean a programming error.
func NewCatalog(banner string, categories []CatalogCategory) (*Catalog, error) {
	c := &Catalog{
		banner:     banner,
		categories: categories,
		index:      make(map[string]catalogEntry),
	}
	for _, cat := range categories {
		for _, item := range cat.Items {
			if prev, ok := c.index[item.Name]; ok {
				return nil, fmt.Errorf("catalog: item %q appears in both %q and %q", item.Name, prev.category, cat.Name)
			}
			c.index[item.Name] = catalogEntry{category: cat.Name, item: item}
		}
	}
	return c, nil
}

// Banner returns the banner image file name.
func (c *Catalog) Banner() string {
	return c.banner
}

// Categories returns category names in declaration order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Items returns the items of one category in declaration order.
func (c *Catalog) Items(category string) ([]CatalogItem, bool) {
	for _, cat := range c.categories {
		if cat.Name == category {
			return cat.Items, true
		}
	}
	return nil, false
}

// Lookup resolves an item name to its category and entry.
func (c *Catalog) Lookup(name string) (string, CatalogItem, bool) {
	entry, ok := c.index[name]
	if !ok {
		return "", CatalogItem{}, false
	}
	return entry.category, entry.item, true
}

// Has reports whether an item is on the menu at all.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// DefaultCatalog is the Delis Burger menu.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog("Banner.jpg", []CatalogCategory{
		{
			Name: "Burgers",
			Items: []CatalogItem{
				{Name: "Classic Burger", Image: "Burger.png", Price: 12.000},
				{Name: "Cheese Burger", Image: "CheeseBurger.png", Price: 15.000},
				{Name: "Chicken Burger", Image: "ChickenBurger.png", Price: 12.000},
				{Name: "Double Cheese Burger", Image: "DoubleCheese.png", Price: 25.000},
				{Name: "MEGA BURGER", Image: "MEGABurger.png", Price: 40.000},
			},
		},
		{
			Name: "Drinks",
			Items: []CatalogItem{
				{Name: "Coca-Cola", Image: "CocaCola.png", Price: 5.000},
				{Name: "Sprite", Image: "Sprite.png", Price: 5.000},
				{Name: "Lemon Tea", Image: "LemonTea.png", Price: 5.000},
				{Name: "Milo", Image: "Milo.png", Price: 5.000},
				{Name: "Aer Putih", Image: "Aer.png", Price: 2.500},
			},
		},
		{
			Name: "Snacks",
			Items: []CatalogItem{
				{Name: "Kebab", Image: "Kebab.png", Price: 16.000},
				{Name: "Nugget", Image: "Nugget.png", Price: 10.000},
				{Name: "Nugget (L)", Image: "Lnugget.png", Price: 18.000},
				{Name: "Salad", Image: "Salad.png", Price: 10.000},
				{Name: "Chicken Wings", Image: "Wing.png", Price: 18.000},
			},
		},
	})
}
