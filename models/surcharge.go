package models

// Surcharge target type constants
const (
	SurchargeTargetSide = "SIDE"
	SurchargeTargetArea = "AREA"
)

// Surcharge is a resolved personalization surcharge for one side or area of a
// product: the flattened view of pricing_rule_items the calculator consumes.
type Surcharge struct {
	TargetID   string `json:"targetId"`   // side id or print area id
	TargetType string `json:"targetType"` // SIDE or AREA
	Name       string `json:"name"`       // display label for the breakdown line
	Price      int64  `json:"price"`      // euro cents
}

// CatalogProduct is the row shape the catalog PDF renders for one product.
type CatalogProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	BasePrice   int64  `json:"basePrice"`
	PriceLabel  string `json:"priceLabel"` // formatted, e.g. "12,50 €"
	ImageURL    string `json:"imageUrl"`
	ImageBase64 string `json:"imageBase64,omitempty"`
	SideCount   int    `json:"sideCount"`
	AreaCount   int    `json:"areaCount"`
}
