package service

import "github.com/go-playground/validator/v10"

// validate checks request structs against the same tags the HTTP layer
// binds with, so services stay safe when called outside a handler.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}
