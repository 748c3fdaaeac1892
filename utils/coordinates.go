package utils

import (
	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

// ToPixels produces the pixel-space rectangle of a print area for the given
// display dimensions, regardless of how the area is stored.
//
// Relative areas are percentages of the displayed image, so they only need to
// be scaled by the display size; their reference dimensions are provenance
// only. Absolute areas are pixels tied to the reference dimensions and must be
// rescaled by displayWidth/referenceWidth (and the height counterpart).
func ToPixels(area *models.PrintArea, displayWidth, displayHeight int) (models.Rect, error) {
	if displayWidth <= 0 || displayHeight <= 0 {
		return models.Rect{}, &apperrors.InvalidGeometryError{
			Message: "display dimensions must be positive",
		}
	}

	if area.IsRelativeCoordinates {
		return models.Rect{
			X:      area.X / 100 * float64(displayWidth),
			Y:      area.Y / 100 * float64(displayHeight),
			Width:  area.Width / 100 * float64(displayWidth),
			Height: area.Height / 100 * float64(displayHeight),
		}, nil
	}

	if area.ReferenceWidth <= 0 || area.ReferenceHeight <= 0 {
		return models.Rect{}, &apperrors.InvalidGeometryError{
			Message: "absolute area has no valid reference dimensions",
		}
	}

	scaleX := float64(displayWidth) / float64(area.ReferenceWidth)
	scaleY := float64(displayHeight) / float64(area.ReferenceHeight)
	return models.Rect{
		X:      area.X * scaleX,
		Y:      area.Y * scaleY,
		Width:  area.Width * scaleX,
		Height: area.Height * scaleY,
	}, nil
}

// ToRelative converts an absolute pixel rectangle, measured against the given
// display dimensions, into percentages of that display. The display dimensions
// become the stored reference dimensions.
//
// No rounding happens here; rendering layers round at draw time.
func ToRelative(rect models.Rect, displayWidth, displayHeight int) (models.Rect, error) {
	if displayWidth <= 0 || displayHeight <= 0 {
		return models.Rect{}, &apperrors.InvalidGeometryError{
			Message: "display dimensions must be positive",
		}
	}

	return models.Rect{
		X:      rect.X / float64(displayWidth) * 100,
		Y:      rect.Y / float64(displayHeight) * 100,
		Width:  rect.Width / float64(displayWidth) * 100,
		Height: rect.Height / float64(displayHeight) * 100,
	}, nil
}

// ValidateRelativeRect checks the containment invariant for a percentage rect:
// positive size, non-negative origin, and the area must not extend outside the
// side image (x+width <= 100, y+height <= 100).
func ValidateRelativeRect(rect models.Rect) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return &apperrors.OutOfBoundsError{Message: "width and height must be positive"}
	}
	if rect.X < 0 || rect.Y < 0 {
		return &apperrors.OutOfBoundsError{Message: "x and y must not be negative"}
	}
	if rect.X+rect.Width > 100 || rect.Y+rect.Height > 100 {
		return &apperrors.OutOfBoundsError{Message: "area extends outside the side image"}
	}
	return nil
}

// ValidateAbsoluteRect checks the minimal invariant for a pixel rect.
func ValidateAbsoluteRect(rect models.Rect) error {
	if rect.Width <= 0 || rect.Height <= 0 {
		return &apperrors.OutOfBoundsError{Message: "width and height must be positive"}
	}
	if rect.X < 0 || rect.Y < 0 {
		return &apperrors.OutOfBoundsError{Message: "x and y must not be negative"}
	}
	return nil
}
