package models

// PrintArea represents a named printable region within a product side.
//
// When IsRelativeCoordinates is true, X/Y/Width/Height are percentages (0-100)
// of the side image's displayed dimensions and ReferenceWidth/ReferenceHeight
// record the pixel dimensions the percentages were authored against. When it is
// false, the four values are raw pixels tied to ReferenceWidth x ReferenceHeight.
type PrintArea struct {
	ID                    string  `json:"id"`
	SideID                string  `json:"sideId"`
	Name                  string  `json:"name"` // unique within a side, e.g. "ESCUDO"
	DisplayName           string  `json:"displayName,omitempty"`
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	IsRelativeCoordinates bool    `json:"isRelativeCoordinates"`
	ReferenceWidth        int     `json:"referenceWidth"`
	ReferenceHeight       int     `json:"referenceHeight"`
	PrintingMethod        string  `json:"printingMethod,omitempty"` // DTG, DTF, SUBLIMATION, VINYL, EMBROIDERY...
	SortOrder             int     `json:"sortOrder"`
	IsActive              bool    `json:"isActive"`
	CreatedAt             string  `json:"createdAt"`
}

// Rect is a plain x/y/width/height rectangle used by coordinate conversions
// and geometry updates. Units depend on context (pixels or percentages).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CreatePrintAreaRequest represents the request body for creating a print area
// Example: {
//   "name": "ESCUDO",
//   "displayName": "Escudo pecho",
//   "x": 10, "y": 15, "width": 25, "height": 20,
//   "isRelativeCoordinates": true,
//   "referenceWidth": 800, "referenceHeight": 600,
//   "printingMethod": "DTF"
// }
type CreatePrintAreaRequest struct {
	Name                  string  `json:"name"`
	DisplayName           string  `json:"displayName"`
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	IsRelativeCoordinates bool    `json:"isRelativeCoordinates"`
	ReferenceWidth        int     `json:"referenceWidth"`
	ReferenceHeight       int     `json:"referenceHeight"`
	PrintingMethod        string  `json:"printingMethod"`
	SortOrder             int     `json:"sortOrder"`
}

// SetGeometryRequest represents the request body for overwriting an area's geometry
type SetGeometryRequest struct {
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	IsRelativeCoordinates bool    `json:"isRelativeCoordinates"`
	ReferenceWidth        int     `json:"referenceWidth"`
	ReferenceHeight       int     `json:"referenceHeight"`
}

// NormalizeSideRequest represents the request body for converting every absolute
// area of a side to relative coordinates
type NormalizeSideRequest struct {
	ReferenceWidth  int `json:"referenceWidth"`
	ReferenceHeight int `json:"referenceHeight"`
}

// NormalizeSideResponse reports how many areas were converted vs already relative
type NormalizeSideResponse struct {
	SideID    string `json:"sideId"`
	Converted int    `json:"converted"`
	Skipped   int    `json:"skipped"`
	Total     int    `json:"total"`
}

// PrintAreaListResponse wraps the print areas of a side
type PrintAreaListResponse struct {
	Areas []PrintArea `json:"areas"`
}
