package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida del validador de DTOs (los tags viven en los structs).
var validate = validator.New()
