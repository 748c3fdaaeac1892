package utils

import "strings"

// Printing method codes stored on print areas
const (
	PrintingMethodDTG         = "DTG"
	PrintingMethodDTF         = "DTF"
	PrintingMethodSublimation = "SUBLIMATION"
	PrintingMethodVinyl       = "VINYL"
	PrintingMethodEmbroidery  = "EMBROIDERY"
	PrintingMethodScreenPrint = "SCREEN_PRINT"
	PrintingMethodLaser       = "LASER_ENGRAVE"
	PrintingMethodUV          = "UV_PRINT"
)

var printingMethodNames = map[string]string{
	PrintingMethodDTG:         "Impresión directa (DTG)",
	PrintingMethodDTF:         "Transfer DTF",
	PrintingMethodSublimation: "Sublimación",
	PrintingMethodVinyl:       "Vinilo textil",
	PrintingMethodEmbroidery:  "Bordado",
	PrintingMethodScreenPrint: "Serigrafía",
	PrintingMethodLaser:       "Grabado láser",
	PrintingMethodUV:          "Impresión UV",
}

// MapPrintingMethodName maps a printing method code to its readable Spanish
// name. Unknown codes are returned as-is.
func MapPrintingMethodName(code string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if name, exists := printingMethodNames[normalized]; exists {
		return name
	}
	return code
}

// IsValidPrintingMethod reports whether the code is one of the supported
// printing methods. Empty is allowed (area without a configured method).
func IsValidPrintingMethod(code string) bool {
	if code == "" {
		return true
	}
	_, exists := printingMethodNames[strings.ToUpper(strings.TrimSpace(code))]
	return exists
}

var sideDisplayNames = map[string]string{
	"FRONT":  "Delante",
	"BACK":   "Detrás",
	"LEFT":   "Manga izquierda",
	"RIGHT":  "Manga derecha",
	"SLEEVE": "Manga",
}

// MapSideName maps a canonical side name to its storefront display name.
// Falls back to the input when there is no mapping.
func MapSideName(name string) string {
	if display, exists := sideDisplayNames[strings.ToUpper(strings.TrimSpace(name))]; exists {
		return display
	}
	return name
}
