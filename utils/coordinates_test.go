package utils

import (
	"errors"
	"math"
	"testing"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToPixelsRelative(t *testing.T) {
	// Relative areas scale with the display, regardless of reference dims
	area := &models.PrintArea{
		X: 10, Y: 20, Width: 25, Height: 50,
		IsRelativeCoordinates: true,
		ReferenceWidth:        800,
		ReferenceHeight:       600,
	}

	tests := []struct {
		name           string
		displayW       int
		displayH       int
		wantX, wantY   float64
		wantW, wantH   float64
	}{
		{"reference size", 800, 600, 80, 120, 200, 300},
		{"half size", 400, 300, 40, 60, 100, 150},
		{"unrelated size", 1000, 1000, 100, 200, 250, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPixels(area, tt.displayW, tt.displayH)
			if err != nil {
				t.Fatalf("ToPixels returned error: %v", err)
			}
			if !almostEqual(got.X, tt.wantX) || !almostEqual(got.Y, tt.wantY) ||
				!almostEqual(got.Width, tt.wantW) || !almostEqual(got.Height, tt.wantH) {
				t.Errorf("got %+v, want x=%v y=%v w=%v h=%v", got, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestToPixelsAbsolute(t *testing.T) {
	area := &models.PrintArea{
		X: 80, Y: 120, Width: 200, Height: 300,
		IsRelativeCoordinates: false,
		ReferenceWidth:        800,
		ReferenceHeight:       600,
	}

	// Display at double the reference scales everything by 2
	got, err := ToPixels(area, 1600, 1200)
	if err != nil {
		t.Fatalf("ToPixels returned error: %v", err)
	}
	want := models.Rect{X: 160, Y: 240, Width: 400, Height: 600}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestToPixelsInvalidDimensions(t *testing.T) {
	relative := &models.PrintArea{X: 10, Y: 10, Width: 10, Height: 10, IsRelativeCoordinates: true}

	tests := []struct {
		name     string
		area     *models.PrintArea
		displayW int
		displayH int
	}{
		{"zero display width", relative, 0, 600},
		{"negative display height", relative, 800, -1},
		{"absolute without reference", &models.PrintArea{X: 1, Y: 1, Width: 1, Height: 1}, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToPixels(tt.area, tt.displayW, tt.displayH)
			var geoErr *apperrors.InvalidGeometryError
			if !errors.As(err, &geoErr) {
				t.Errorf("expected InvalidGeometryError, got %v", err)
			}
		})
	}
}

func TestToRelativeRoundTrip(t *testing.T) {
	// Converting absolute pixels to relative and scaling back to the same
	// display must reproduce the original rectangle
	original := models.Rect{X: 120, Y: 45, Width: 260, Height: 180}
	const displayW, displayH = 800, 600

	relative, err := ToRelative(original, displayW, displayH)
	if err != nil {
		t.Fatalf("ToRelative returned error: %v", err)
	}

	area := &models.PrintArea{
		X: relative.X, Y: relative.Y, Width: relative.Width, Height: relative.Height,
		IsRelativeCoordinates: true,
		ReferenceWidth:        displayW,
		ReferenceHeight:       displayH,
	}

	back, err := ToPixels(area, displayW, displayH)
	if err != nil {
		t.Fatalf("ToPixels returned error: %v", err)
	}

	if !almostEqual(back.X, original.X) || !almostEqual(back.Y, original.Y) ||
		!almostEqual(back.Width, original.Width) || !almostEqual(back.Height, original.Height) {
		t.Errorf("round trip changed rect: got %+v, want %+v", back, original)
	}
}

func TestToRelativeInvalidDimensions(t *testing.T) {
	_, err := ToRelative(models.Rect{X: 1, Y: 1, Width: 1, Height: 1}, 0, 600)
	var geoErr *apperrors.InvalidGeometryError
	if !errors.As(err, &geoErr) {
		t.Errorf("expected InvalidGeometryError, got %v", err)
	}
}

func TestValidateRelativeRect(t *testing.T) {
	tests := []struct {
		name    string
		rect    models.Rect
		wantErr bool
	}{
		{"valid", models.Rect{X: 10, Y: 10, Width: 30, Height: 30}, false},
		{"fills the side", models.Rect{X: 0, Y: 0, Width: 100, Height: 100}, false},
		{"zero width", models.Rect{X: 10, Y: 10, Width: 0, Height: 30}, true},
		{"negative height", models.Rect{X: 10, Y: 10, Width: 30, Height: -5}, true},
		{"negative origin", models.Rect{X: -1, Y: 10, Width: 30, Height: 30}, true},
		{"extends past right edge", models.Rect{X: 80, Y: 10, Width: 30, Height: 30}, true},
		{"extends past bottom edge", models.Rect{X: 10, Y: 90, Width: 30, Height: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativeRect(tt.rect)
			if tt.wantErr {
				var boundsErr *apperrors.OutOfBoundsError
				if !errors.As(err, &boundsErr) {
					t.Errorf("expected OutOfBoundsError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAbsoluteRect(t *testing.T) {
	if err := ValidateAbsoluteRect(models.Rect{X: 0, Y: 0, Width: 500, Height: 700}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateAbsoluteRect(models.Rect{X: 10, Y: 10, Width: -1, Height: 5}); err == nil {
		t.Error("expected error for negative width")
	}
}
