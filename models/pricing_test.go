package models

import (
	"encoding/json"
	"testing"
)

func TestPriceRequestAcceptsMixedAreaFormats(t *testing.T) {
	body := `{
		"productId": "prod-1",
		"quantity": 10,
		"sides": ["side-front"],
		"areas": ["area-nombre", {"areaId": "area-escudo", "options": {"printingMethod": "DTF"}}]
	}`

	var req PriceRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(req.Areas) != 2 {
		t.Fatalf("areas = %d, want 2", len(req.Areas))
	}
	if req.Areas[0].AreaID != "area-nombre" || req.Areas[0].Options != nil {
		t.Errorf("bare string area = %+v, want areaId only", req.Areas[0])
	}
	if req.Areas[1].AreaID != "area-escudo" {
		t.Errorf("object area id = %q, want area-escudo", req.Areas[1].AreaID)
	}
	if req.Areas[1].Options == nil || req.Areas[1].Options.PrintingMethod != "DTF" {
		t.Errorf("object area options = %+v, want printingMethod DTF", req.Areas[1].Options)
	}
}

func TestAreaSelectionRejectsOtherTypes(t *testing.T) {
	var sel AreaSelection
	if err := json.Unmarshal([]byte(`42`), &sel); err == nil {
		t.Error("expected error for numeric area selection")
	}
	if err := json.Unmarshal([]byte(`["nested"]`), &sel); err == nil {
		t.Error("expected error for array area selection")
	}
}
