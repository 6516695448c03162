package services

import (
	"context"
	"sync"
	"testing"

	"amc-backend/internal/cascade"
)

// scopeRecorder hands out FetchFuncs that log the scope of every call.
type scopeRecorder struct {
	mu    sync.Mutex
	calls map[string][]cascade.Scope
}

func newScopeRecorder() *scopeRecorder {
	return &scopeRecorder{calls: make(map[string][]cascade.Scope)}
}

func (r *scopeRecorder) fetch(name string, options []cascade.Option) cascade.FetchFunc {
	return func(ctx context.Context, scope cascade.Scope) ([]cascade.Option, error) {
		r.mu.Lock()
		r.calls[name] = append(r.calls[name], scope)
		r.mu.Unlock()
		return options, nil
	}
}

func (r *scopeRecorder) lastScope(name string) (cascade.Scope, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scopes := r.calls[name]
	if len(scopes) == 0 {
		return nil, false
	}
	return scopes[len(scopes)-1], true
}

func TestItemFormInvoicesLoadWithoutLocation(t *testing.T) {
	rec := newScopeRecorder()
	invoices := []cascade.Option{{ID: 10, Label: "INV-001"}, {ID: 11, Label: "INV-002"}}

	form, err := itemFormResolve(context.Background(), 7, 0, 0,
		rec.fetch("location", []cascade.Option{{ID: 5, Label: "Site A"}}),
		rec.fetch("invoice", invoices),
		rec.fetch("product", nil))
	if err != nil {
		t.Fatalf("itemFormResolve: %v", err)
	}

	if got := len(form.Options("invoice")); got != 2 {
		t.Fatalf("expected the customer's invoices with no location chosen, got %d options", got)
	}
	scope, ok := rec.lastScope("invoice")
	if !ok {
		t.Fatal("invoice fetch never ran")
	}
	if scope["customer"] != 7 || scope["location"] != 0 {
		t.Errorf("invoice scope = %v, want customer 7 and unset location", scope)
	}
	if _, ok := rec.lastScope("product"); ok {
		t.Error("product fetch ran with no invoice selected")
	}
}

func TestItemFormLocationNarrowsInvoices(t *testing.T) {
	rec := newScopeRecorder()

	_, err := itemFormResolve(context.Background(), 7, 5, 0,
		rec.fetch("location", []cascade.Option{{ID: 5, Label: "Site A"}}),
		rec.fetch("invoice", []cascade.Option{{ID: 10, Label: "INV-001"}}),
		rec.fetch("product", nil))
	if err != nil {
		t.Fatalf("itemFormResolve: %v", err)
	}

	scope, ok := rec.lastScope("invoice")
	if !ok {
		t.Fatal("invoice fetch never ran")
	}
	if scope["location"] != 5 {
		t.Errorf("invoice scope location = %d, want 5", scope["location"])
	}
}

func TestItemFormProductsRequireListedInvoice(t *testing.T) {
	invoices := []cascade.Option{{ID: 10, Label: "INV-001"}}

	rec := newScopeRecorder()
	form, err := itemFormResolve(context.Background(), 7, 0, 10,
		rec.fetch("location", nil),
		rec.fetch("invoice", invoices),
		rec.fetch("product", []cascade.Option{{ID: 3, Label: "Chiller"}}))
	if err != nil {
		t.Fatalf("itemFormResolve: %v", err)
	}
	if got := len(form.Options("product")); got != 1 {
		t.Fatalf("expected product rows for a listed invoice, got %d", got)
	}
	scope, _ := rec.lastScope("product")
	if scope["invoice"] != 10 {
		t.Errorf("product scope invoice = %d, want 10", scope["invoice"])
	}

	// An invoice id outside the option list must not unlock products.
	rec = newScopeRecorder()
	form, err = itemFormResolve(context.Background(), 7, 0, 99,
		rec.fetch("location", nil),
		rec.fetch("invoice", invoices),
		rec.fetch("product", []cascade.Option{{ID: 3, Label: "Chiller"}}))
	if err != nil {
		t.Fatalf("itemFormResolve: %v", err)
	}
	if got := len(form.Options("product")); got != 0 {
		t.Fatalf("expected no product rows for an unlisted invoice, got %d", got)
	}
	if _, ok := rec.lastScope("product"); ok {
		t.Error("product fetch ran for an invoice outside the option list")
	}
}
