package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/licitacal/internal/calendar"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules used by the request
// DTOs on gin's validator engine. Safe to call more than once.
//
// Rules:
//   - isodate: string in YYYY-MM-DD form naming a real calendar day.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("isodate", isoDate)
	})
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}
