package services

import (
	"testing"

	"amc-backend/internal/models"
)

func TestApplyProposalTotals(t *testing.T) {
	tests := []struct {
		name             string
		amounts          []float64
		additionalCharge float64
		discount         float64
		taxRate          float64
		total            float64
		taxAmount        float64
		grandTotal       float64
	}{
		{
			name:       "no items no tax",
			amounts:    nil,
			total:      0,
			taxAmount:  0,
			grandTotal: 0,
		},
		{
			name:       "plain sum without charges",
			amounts:    []float64{100, 250.50},
			total:      350.50,
			taxAmount:  0,
			grandTotal: 350.50,
		},
		{
			name:             "gst on adjusted base",
			amounts:          []float64{1000},
			additionalCharge: 200,
			discount:         100,
			taxRate:          18,
			total:            1000,
			taxAmount:        198,
			grandTotal:       1298,
		},
		{
			name:       "tax rounded to paise",
			amounts:    []float64{333.33},
			taxRate:    18,
			total:      333.33,
			taxAmount:  60,
			grandTotal: 393.33,
		},
		{
			name:       "discount larger than total",
			amounts:    []float64{50},
			discount:   80,
			taxRate:    18,
			total:      50,
			taxAmount:  -5.4,
			grandTotal: -35.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Proposal{
				AdditionalCharge: tt.additionalCharge,
				Discount:         tt.discount,
				TaxRate:          tt.taxRate,
			}
			for _, a := range tt.amounts {
				p.Items = append(p.Items, models.ProposalItem{Amount: a})
			}

			applyProposalTotals(p)

			if p.Total != tt.total {
				t.Errorf("Total = %v, want %v", p.Total, tt.total)
			}
			if p.TaxAmount != tt.taxAmount {
				t.Errorf("TaxAmount = %v, want %v", p.TaxAmount, tt.taxAmount)
			}
			if p.GrandTotal != tt.grandTotal {
				t.Errorf("GrandTotal = %v, want %v", p.GrandTotal, tt.grandTotal)
			}
		})
	}
}

func TestValidProposalStatus(t *testing.T) {
	for _, status := range models.ProposalStatuses {
		if !validProposalStatus(status) {
			t.Errorf("validProposalStatus(%q) = false, want true", status)
		}
	}

	for _, status := range []string{"", "draft", "Active", "cancelled"} {
		if validProposalStatus(status) {
			t.Errorf("validProposalStatus(%q) = true, want false", status)
		}
	}
}

func TestResolveSerial(t *testing.T) {
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name      string
		requested *string
		suggested string
		want      string
	}{
		{"absent serial takes suggestion", nil, "SN-100", "SN-100"},
		{"absent serial with no suggestion", nil, "", ""},
		{"user serial kept over suggestion", ptr("SN-999"), "SN-100", "SN-999"},
		{"blanked serial stays blank", ptr(""), "SN-100", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveSerial(tt.requested, tt.suggested); got != tt.want {
				t.Errorf("resolveSerial(%v, %q) = %q, want %q", tt.requested, tt.suggested, got, tt.want)
			}
		})
	}
}
