package form

import "github.com/hammamikhairi/recipehaven/internal/domain"

// State is the in-progress form: the draft plus the errors from the last
// submit attempt.
type State struct {
	Draft  domain.Draft
	Errors domain.ErrorSet
}

// NewState returns an empty form.
func NewState() *State {
	return &State{Draft: domain.NewDraft(), Errors: domain.ErrorSet{}}
}

// Set updates a field. A changed value clears that field's error until
// the next submit attempt.
func (s *State) Set(f domain.Field, v string) {
	if s.Draft.Get(f) == v {
		return
	}
	s.Draft.Set(f, v)
	delete(s.Errors, f)
}

// Validate recomputes the full error set from the current draft.
func (s *State) Validate() Result {
	res := Validate(s.Draft)
	s.Errors = res.Errors
	return res
}

// Reset discards the draft and any errors.
func (s *State) Reset() {
	s.Draft = domain.NewDraft()
	s.Errors = domain.ErrorSet{}
}
