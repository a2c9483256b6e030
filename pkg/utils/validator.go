package utils

import (
	"log"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Digits with an optional leading +, 7 to 15 digits total (E.164-ish).
var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var phoneValidator validator.Func = func(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

// InitValidator registers the custom "phone" binding validation.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("phone", phoneValidator); err != nil {
			log.Fatalf("error registering phone validation: %v", err)
		}
	} else {
		log.Fatalf("error registering validation engine")
	}
}
