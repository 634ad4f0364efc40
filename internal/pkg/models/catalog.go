package models

// CatalogType separates bundled packages from single tests
type CatalogType string

const (
	CatalogPackage CatalogType = "PACKAGE"
	CatalogTest    CatalogType = "TEST"
)

// Category groups catalog items
type Category struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Parameter is a single measured value of a test
type Parameter struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	NormalRange string `json:"normalRange,omitempty"`
	TestID      string `json:"testId,omitempty"`
}

// CatalogItem is a package or test sold on the site
type CatalogItem struct {
	ID              string      `json:"_id,omitempty"`
	Name            string      `json:"name"`
	Type            CatalogType `json:"type"`
	Category        Category    `json:"category"`
	Tags            []string    `json:"tags,omitempty"`
	Price           float64     `json:"price"`
	DiscountedPrice float64     `json:"discountedPrice,omitempty"`
	Description     string      `json:"description,omitempty"`
	Parameters      []Parameter `json:"parameters,omitempty"`
	ImageURL        string      `json:"imageUrl,omitempty"`
}
