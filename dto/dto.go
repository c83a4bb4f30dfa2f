// Package dto holds the request and response bodies of the HTTP API and the
// explicit mappings between them and the stored models.
package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MapSlice converts every element of in with f. It never returns nil so empty
// lists render as [].
func MapSlice[T any, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		out = append(out, f(item))
	}
	return out
}

// NameRequest is the body of every lookup entity that only carries a name.
type NameRequest struct {
	Name string `json:"name"`
}

func (r NameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 150)),
	)
}

// NameResponse is the representation of a lookup entity.
type NameResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
