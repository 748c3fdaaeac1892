package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"lovilike-backoffice/models"
)

// ParseLibraryFileName parses a library image filename into a LibraryImage.
// Expected pattern: CATEGORY_some-name.ext (e.g. "ANIMALES_perro-feliz.png").
// Files without a category prefix land in the "SIN_CATEGORIA" bucket.
func ParseLibraryFileName(fileName string) (*models.LibraryImage, error) {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("empty filename")
	}

	image := &models.LibraryImage{
		FileName: fileName,
	}

	parts := strings.SplitN(base, "_", 2)
	if len(parts) == 2 && parts[0] != "" {
		image.Category = strings.ToUpper(parts[0])
	} else {
		image.Category = "SIN_CATEGORIA"
	}

	return image, nil
}
