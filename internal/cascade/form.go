// Package cascade drives dependent selector fields on entry forms.
//
// A form is a set of selector fields where some fields list options that
// depend on what is chosen upstream (invoices depend on the chosen location,
// products on the chosen invoice). Changing a selector invalidates everything
// downstream of it and refreshes the dependent option lists. Option fetches
// run concurrently and each carries the generation of the selector state that
// requested it: a response that arrives after the selector moved on is thrown
// away, so the options shown always belong to the current selection.
package cascade

import (
	"context"
	"sync"
)

// Option is one selectable entry in a dependent field's option list.
type Option struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Scope carries the upstream selections a fetch is keyed by,
// field name to selected ID. A zero ID means nothing is selected.
type Scope map[string]int

// FetchFunc loads the option list for a field given its upstream scope.
type FetchFunc func(ctx context.Context, scope Scope) ([]Option, error)

type field struct {
	name       string
	dependsOn  []string
	filters    []string
	fetch      FetchFunc
	options    []Option
	selected   int
	generation uint64
	loading    bool
	err        error
}

// Form manages a group of selector fields and their dependencies.
// All methods are safe for concurrent use.
type Form struct {
	mu      sync.Mutex
	fields  map[string]*field
	order   []string
	pending sync.WaitGroup
}

func NewForm() *Form {
	return &Form{fields: make(map[string]*field)}
}

// AddSelector registers an independent selector with a fixed option list.
func (f *Form) AddSelector(name string, options []Option) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = &field{name: name, options: options}
	f.order = append(f.order, name)
}

// AddDependent registers a selector whose options are fetched from the
// selections of the named upstream fields. Until every upstream field has a
// selection the option list stays empty and no fetch is issued.
func (f *Form) AddDependent(name string, dependsOn []string, fetch FetchFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[name] = &field{name: name, dependsOn: dependsOn, fetch: fetch}
	f.order = append(f.order, name)
}

// FilterBy adds an optional upstream edge to a dependent field. The upstream
// selection rides along in the fetch scope and a change to it triggers a
// refresh, but unlike a dependsOn edge an empty upstream selection does not
// hold the fetch back. Use it for selectors that narrow a list rather than
// unlock it.
func (f *Form) FilterBy(name, upstream string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fd, ok := f.fields[name]; ok {
		fd.filters = append(fd.filters, upstream)
	}
}

// Select sets a field's selection and cascades the change downstream.
// Every field depending on this one, directly or transitively, loses its
// selection and options. Dependents whose upstream scope is now complete get
// a refresh; a cleared required upstream (id 0) leaves its dependents empty
// with no fetch issued, while a cleared filter refetches un-narrowed. The
// selection is accepted even when it repeats the previous ID, because the
// rows behind a re-fetched option list may have changed.
func (f *Form) Select(ctx context.Context, name string, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fd, ok := f.fields[name]
	if !ok {
		return
	}
	fd.selected = id

	for _, depName := range f.downstreamOf(name) {
		dep := f.fields[depName]
		dep.selected = 0
		dep.options = nil
		dep.generation++
		dep.loading = false
		dep.err = nil

		scope, complete := f.scopeFor(dep)
		if !complete || dep.fetch == nil {
			continue
		}
		dep.loading = true
		f.startFetch(ctx, dep, scope, dep.generation)
	}
}

// startFetch launches the option load for one field. Caller holds the lock.
func (f *Form) startFetch(ctx context.Context, fd *field, scope Scope, gen uint64) {
	f.pending.Add(1)
	go func() {
		defer f.pending.Done()
		options, err := fd.fetch(ctx, scope)

		f.mu.Lock()
		defer f.mu.Unlock()
		// A later selection supersedes this fetch. Drop the result.
		if fd.generation != gen {
			return
		}
		fd.loading = false
		fd.err = err
		if err != nil {
			fd.options = nil
			return
		}
		fd.options = options
	}()
}

// downstreamOf returns every field reachable from name through dependency or
// filter edges, in registration order so parents are invalidated before
// children.
func (f *Form) downstreamOf(name string) []string {
	affected := map[string]bool{name: true}
	var result []string
	for _, candidate := range f.order {
		fd := f.fields[candidate]
		reached := false
		for _, up := range fd.dependsOn {
			if affected[up] {
				reached = true
				break
			}
		}
		if !reached {
			for _, up := range fd.filters {
				if affected[up] {
					reached = true
					break
				}
			}
		}
		if reached {
			affected[candidate] = true
			result = append(result, candidate)
		}
	}
	return result
}

// scopeFor collects a field's upstream selections. The scope is complete only
// when every dependsOn field has a non-zero selection; filter fields ride
// along regardless of their state.
func (f *Form) scopeFor(fd *field) (Scope, bool) {
	scope := make(Scope, len(fd.dependsOn)+len(fd.filters))
	complete := true
	for _, up := range fd.dependsOn {
		upField, ok := f.fields[up]
		if !ok || upField.selected == 0 {
			complete = false
		}
		if ok {
			scope[up] = upField.selected
		}
	}
	for _, up := range fd.filters {
		if upField, ok := f.fields[up]; ok {
			scope[up] = upField.selected
		}
	}
	return scope, complete
}

// Selected returns a field's current selection, zero when nothing is chosen.
func (f *Form) Selected(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fd, ok := f.fields[name]; ok {
		return fd.selected
	}
	return 0
}

// Options returns a copy of a field's current option list.
func (f *Form) Options(name string) []Option {
	f.mu.Lock()
	defer f.mu.Unlock()
	fd, ok := f.fields[name]
	if !ok {
		return nil
	}
	out := make([]Option, len(fd.options))
	copy(out, fd.options)
	return out
}

// Err returns the error of a field's most recent completed fetch, nil when
// the fetch succeeded or none has run.
func (f *Form) Err(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fd, ok := f.fields[name]; ok {
		return fd.err
	}
	return nil
}

// Loading reports whether a field has a fetch in flight.
func (f *Form) Loading(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fd, ok := f.fields[name]; ok {
		return fd.loading
	}
	return false
}

// Wait blocks until every in-flight fetch has completed or been discarded.
func (f *Form) Wait() {
	f.pending.Wait()
}
