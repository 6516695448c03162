package cascade

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// blockingFetcher lets a test hold a fetch open until released, so stale
// responses can be forced to arrive after the selector has moved on.
type blockingFetcher struct {
	mu      sync.Mutex
	results map[int][]Option
	gates   map[int]chan struct{}
	calls   []Scope
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{
		results: make(map[int][]Option),
		gates:   make(map[int]chan struct{}),
	}
}

func (b *blockingFetcher) setResult(scopeID int, options []Option) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results[scopeID] = options
}

func (b *blockingFetcher) block(scopeID int) chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	gate := make(chan struct{})
	b.gates[scopeID] = gate
	return gate
}

func (b *blockingFetcher) fetch(key string) FetchFunc {
	return func(ctx context.Context, scope Scope) ([]Option, error) {
		b.mu.Lock()
		id := scope[key]
		gate := b.gates[id]
		b.calls = append(b.calls, scope)
		b.mu.Unlock()

		if gate != nil {
			<-gate
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		return b.results[id], nil
	}
}

func (b *blockingFetcher) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func TestSelectFetchesDependentOptions(t *testing.T) {
	fetcher := newBlockingFetcher()
	fetcher.setResult(1, []Option{{ID: 10, Label: "INV-10"}, {ID: 11, Label: "INV-11"}})

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}})
	form.AddDependent("invoice", []string{"location"}, fetcher.fetch("location"))

	form.Select(context.Background(), "location", 1)
	form.Wait()

	options := form.Options("invoice")
	if len(options) != 2 {
		t.Fatalf("expected 2 invoice options, got %d", len(options))
	}
	if options[0].ID != 10 || options[1].ID != 11 {
		t.Errorf("unexpected options: %+v", options)
	}
}

func TestClearingSelectorClearsDependentsWithoutFetch(t *testing.T) {
	fetcher := newBlockingFetcher()
	fetcher.setResult(1, []Option{{ID: 10, Label: "INV-10"}})

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}})
	form.AddDependent("invoice", []string{"location"}, fetcher.fetch("location"))

	form.Select(context.Background(), "location", 1)
	form.Wait()
	form.Select(context.Background(), "invoice", 10)

	calls := fetcher.callCount()
	form.Select(context.Background(), "location", 0)
	form.Wait()

	if got := fetcher.callCount(); got != calls {
		t.Errorf("clearing the selector issued a fetch: %d calls, want %d", got, calls)
	}
	if form.Selected("invoice") != 0 {
		t.Error("dependent selection survived upstream clear")
	}
	if len(form.Options("invoice")) != 0 {
		t.Error("dependent options survived upstream clear")
	}
}

func TestSelectorChangeInvalidatesDownstreamSelection(t *testing.T) {
	fetcher := newBlockingFetcher()
	fetcher.setResult(1, []Option{{ID: 10, Label: "INV-10"}})
	fetcher.setResult(2, []Option{{ID: 10, Label: "INV-10"}})

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}, {ID: 2, Label: "Site B"}})
	form.AddDependent("invoice", []string{"location"}, fetcher.fetch("location"))

	form.Select(context.Background(), "location", 1)
	form.Wait()
	form.Select(context.Background(), "invoice", 10)

	// Both locations happen to list invoice 10. The selection must still be
	// dropped because it was made against the old scope.
	form.Select(context.Background(), "location", 2)
	form.Wait()

	if form.Selected("invoice") != 0 {
		t.Error("downstream selection survived an upstream change with coinciding IDs")
	}
}

func TestStaleFetchResponseDiscarded(t *testing.T) {
	fetcher := newBlockingFetcher()
	fetcher.setResult(1, []Option{{ID: 10, Label: "stale"}})
	fetcher.setResult(2, []Option{{ID: 20, Label: "fresh"}})
	gate := fetcher.block(1)

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}, {ID: 2, Label: "Site B"}})
	form.AddDependent("invoice", []string{"location"}, fetcher.fetch("location"))

	// First fetch hangs on the gate, second completes immediately.
	form.Select(context.Background(), "location", 1)
	form.Select(context.Background(), "location", 2)

	// Release the stale response after the fresh one had a chance to land.
	close(gate)
	form.Wait()

	options := form.Options("invoice")
	if len(options) != 1 || options[0].ID != 20 {
		t.Fatalf("stale response overwrote fresh options: %+v", options)
	}
}

func TestTransitiveInvalidation(t *testing.T) {
	fetcher := newBlockingFetcher()
	fetcher.setResult(1, []Option{{ID: 10, Label: "INV-10"}})

	productFetches := 0
	var mu sync.Mutex
	productFetch := func(ctx context.Context, scope Scope) ([]Option, error) {
		mu.Lock()
		productFetches++
		mu.Unlock()
		return []Option{{ID: 100, Label: fmt.Sprintf("product for %d", scope["invoice"])}}, nil
	}

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}})
	form.AddDependent("invoice", []string{"location"}, fetcher.fetch("location"))
	form.AddDependent("product", []string{"invoice"}, productFetch)

	form.Select(context.Background(), "location", 1)
	form.Wait()
	form.Select(context.Background(), "invoice", 10)
	form.Wait()
	form.Select(context.Background(), "product", 100)

	// Changing the root selector must clear both levels below it.
	form.Select(context.Background(), "location", 0)
	form.Wait()

	if form.Selected("invoice") != 0 || form.Selected("product") != 0 {
		t.Error("transitive dependents kept their selections after root clear")
	}
	if len(form.Options("product")) != 0 {
		t.Error("transitive dependent kept options after root clear")
	}
}

func TestDependentWithIncompleteScopeStaysEmpty(t *testing.T) {
	fetcher := newBlockingFetcher()

	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}})
	form.AddSelector("year", []Option{{ID: 2024, Label: "2024"}})
	form.AddDependent("invoice", []string{"location", "year"}, fetcher.fetch("location"))

	form.Select(context.Background(), "location", 1)
	form.Wait()

	if got := fetcher.callCount(); got != 0 {
		t.Errorf("fetch issued with incomplete scope: %d calls", got)
	}
	if len(form.Options("invoice")) != 0 {
		t.Error("dependent gained options with incomplete scope")
	}
}

func TestFilterNarrowsWithoutGating(t *testing.T) {
	var mu sync.Mutex
	var scopes []Scope

	form := NewForm()
	form.AddSelector("customer", nil)
	form.AddSelector("location", []Option{{ID: 5, Label: "Site A"}})
	form.AddDependent("invoice", []string{"customer"}, func(ctx context.Context, scope Scope) ([]Option, error) {
		mu.Lock()
		scopes = append(scopes, scope)
		mu.Unlock()
		if scope["location"] == 5 {
			return []Option{{ID: 10, Label: "INV-10"}}, nil
		}
		return []Option{{ID: 10, Label: "INV-10"}, {ID: 11, Label: "INV-11"}}, nil
	})
	form.FilterBy("invoice", "location")

	// No location chosen: the invoice list must still load for the customer.
	form.Select(context.Background(), "customer", 1)
	form.Wait()
	if got := len(form.Options("invoice")); got != 2 {
		t.Fatalf("expected full invoice list without a location, got %d options", got)
	}
	mu.Lock()
	if scopes[0]["location"] != 0 {
		t.Errorf("expected unset filter to ride along as 0, got %d", scopes[0]["location"])
	}
	mu.Unlock()

	// Choosing a location narrows the list.
	form.Select(context.Background(), "location", 5)
	form.Wait()
	if got := len(form.Options("invoice")); got != 1 {
		t.Fatalf("expected narrowed invoice list with a location, got %d options", got)
	}

	// Clearing the location widens it again.
	form.Select(context.Background(), "location", 0)
	form.Wait()
	if got := len(form.Options("invoice")); got != 2 {
		t.Fatalf("expected full invoice list after clearing the location, got %d options", got)
	}
}

func TestFetchErrorSurfaced(t *testing.T) {
	form := NewForm()
	form.AddSelector("location", []Option{{ID: 1, Label: "Site A"}})
	form.AddDependent("invoice", []string{"location"}, func(ctx context.Context, scope Scope) ([]Option, error) {
		return nil, fmt.Errorf("invoice query failed")
	})

	form.Select(context.Background(), "location", 1)
	form.Wait()

	if err := form.Err("invoice"); err == nil {
		t.Fatal("expected fetch error to be reported")
	}
	if got := form.Options("invoice"); len(got) != 0 {
		t.Errorf("expected no options after failed fetch, got %+v", got)
	}

	// Clearing the upstream selector clears the error with the options.
	form.Select(context.Background(), "location", 0)
	form.Wait()
	if err := form.Err("invoice"); err != nil {
		t.Errorf("expected error cleared on invalidation, got %v", err)
	}
}
