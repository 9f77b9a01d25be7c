package events

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding validators this package
// relies on. Called once from main before any route is served.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("eventtype", validEventType)
	}
}

// validEventType accepts any case variant of the closed Movie/Concert/Sport
// tag set
func validEventType(fl validator.FieldLevel) bool {
	_, err := ParseEventType(fl.Field().String())
	return err == nil
}
