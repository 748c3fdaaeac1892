package utils

import "testing"

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0,00 €"},
		{5, "0,05 €"},
		{50, "0,50 €"},
		{1000, "10,00 €"},
		{1020, "10,20 €"},
		{1250, "12,50 €"},
		{123456, "1.234,56 €"},
		{100000000, "1.000.000,00 €"},
		{-1250, "-12,50 €"},
	}

	for _, tt := range tests {
		if got := FormatEUR(tt.cents); got != tt.want {
			t.Errorf("FormatEUR(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
