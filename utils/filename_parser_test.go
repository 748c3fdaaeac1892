package utils

import "testing"

func TestParseLibraryFileName(t *testing.T) {
	tests := []struct {
		fileName     string
		wantCategory string
	}{
		{"ANIMALES_perro-feliz.png", "ANIMALES"},
		{"animales_gato.jpg", "ANIMALES"},
		{"DEPORTES_balon_futbol.png", "DEPORTES"},
		{"sin-prefijo.png", "SIN_CATEGORIA"},
		{"_sin-categoria.png", "SIN_CATEGORIA"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			image, err := ParseLibraryFileName(tt.fileName)
			if err != nil {
				t.Fatalf("ParseLibraryFileName returned error: %v", err)
			}
			if image.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", image.Category, tt.wantCategory)
			}
			if image.FileName != tt.fileName {
				t.Errorf("fileName = %q, want %q", image.FileName, tt.fileName)
			}
		})
	}
}

func TestParseLibraryFileNameEmpty(t *testing.T) {
	if _, err := ParseLibraryFileName(".png"); err == nil {
		t.Error("expected error for empty base name")
	}
}
