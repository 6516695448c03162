package cascade

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		rate     float64
		want     float64
	}{
		{"whole numbers", 2, 1500, 3000},
		{"fractional rate", 3, 333.333, 1000},
		{"zero quantity", 0, 500, 0},
		{"zero rate", 4, 0, 0},
		{"rounds half up", 1, 10.005, 10.01},
		{"single unit", 1, 4250.50, 4250.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.quantity, tt.rate); got != tt.want {
				t.Errorf("Amount(%v, %v) = %v, want %v", tt.quantity, tt.rate, got, tt.want)
			}
		})
	}
}

func TestAutofillOneShot(t *testing.T) {
	var a Autofill

	if !a.Suggest("SN-001") {
		t.Fatal("first suggestion rejected")
	}
	if a.Value() != "SN-001" {
		t.Fatalf("value = %q, want SN-001", a.Value())
	}

	// A second suggestion never overwrites the first fill.
	if a.Suggest("SN-002") {
		t.Error("second suggestion accepted")
	}
	if a.Value() != "SN-001" {
		t.Errorf("value = %q after second suggestion, want SN-001", a.Value())
	}
}

func TestAutofillUserEditPinsValue(t *testing.T) {
	var a Autofill
	a.Suggest("SN-001")
	a.Set("SN-CUSTOM")

	if a.Suggest("SN-003") {
		t.Error("suggestion accepted after user edit")
	}
	if a.Value() != "SN-CUSTOM" {
		t.Errorf("value = %q, want SN-CUSTOM", a.Value())
	}
}

func TestAutofillEditToEmptyStillPins(t *testing.T) {
	var a Autofill
	a.Set("")

	if a.Suggest("SN-001") {
		t.Error("suggestion accepted after explicit clear")
	}
	if a.Value() != "" {
		t.Errorf("value = %q, want empty", a.Value())
	}
}

func TestAutofillEmptySuggestionIgnored(t *testing.T) {
	var a Autofill

	if a.Suggest("") {
		t.Error("empty suggestion accepted")
	}
	// An empty suggestion must not consume the one shot.
	if !a.Suggest("SN-001") {
		t.Error("real suggestion rejected after empty one")
	}
}
