package cascade

// Autofill fills a text field from an upstream source exactly once.
// The first non-empty suggestion lands in the field; after that the value
// belongs to the user and later suggestions are ignored. An explicit edit,
// even back to empty, also pins the field.
type Autofill struct {
	value  string
	filled bool
	edited bool
}

// Suggest offers an upstream value. It is applied only when the field has
// never been filled or edited. Returns true when the suggestion was taken.
func (a *Autofill) Suggest(v string) bool {
	if a.filled || a.edited || v == "" {
		return false
	}
	a.value = v
	a.filled = true
	return true
}

// Set records a user edit. Suggestions no longer apply.
func (a *Autofill) Set(v string) {
	a.value = v
	a.edited = true
}

// Value returns the current field content.
func (a *Autofill) Value() string {
	return a.value
}
