package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// registerCustomValidations installs domain-specific binding rules on gin's
// validator engine. Registration failures are programming errors, so they
// panic at startup rather than being deferred to request time.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	if err := v.RegisterValidation("orderstatus", validOrderStatus); err != nil {
		panic(err)
	}
}

// validOrderStatus accepts only the known pipeline stage names. Whether the
// stage is reachable from the order's current status is the service's call,
// not the binding layer's.
func validOrderStatus(fl validator.FieldLevel) bool {
	return domain.OrderStatus(fl.Field().String()).IsValid()
}
