package helper

import "github.com/go-playground/validator/v10"

// Validate is the process-wide validator.v10 instance used by every DTO.
var Validate = validator.New()
