package request

import (
	"reflect"
	"strings"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs:
//   - date: a YYYY-MM-DD calendar day
//   - booking_source: one of the known booking channels
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(jsonTagName)
	if err := v.RegisterValidation("date", isDate); err != nil {
		return err
	}
	return v.RegisterValidation("booking_source", isBookingSource)
}

// jsonTagName reports fields under their wire name; form tags cover query binding.
func jsonTagName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func isDate(fl validator.FieldLevel) bool {
	_, err := pricing.ParseDate(fl.Field().String())
	return err == nil
}

func isBookingSource(fl validator.FieldLevel) bool {
	_, err := reservation.NewSource(fl.Field().String())
	return err == nil
}
