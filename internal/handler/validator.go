package handler

import "github.com/go-playground/validator/v10"

// RequestValidator wires go-playground/validator into echo so the
// `validate` struct tags on the request types are enforced before any
// payload reaches the dashboard store.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
