package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/authorization"
)

// RegisterValidators installs the domain enum validators on Gin's binding
// engine. Must run before the router handles requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		_, err := vo.NewPriority(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		_, err := vo.NewTicketStatus(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		_, ok := authorization.ParseUserRole(fl.Field().String())
		return ok
	})
}
