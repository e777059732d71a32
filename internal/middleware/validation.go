package middleware

import (
	"reflect"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the shop's custom binding tags to gin's validator:
// metal, paymentmode, purity (0 < p <= 100) and ratepct (0 <= r <= 100).
// Decimal fields are validated through their float value.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("metal", func(fl validator.FieldLevel) bool {
		return domain.Metal(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("paymentmode", func(fl validator.FieldLevel) bool {
		return domain.PaymentMode(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	v.RegisterAlias("purity", "gt=0,lte=100")
	v.RegisterAlias("ratepct", "gte=0,lte=100")
	return nil
}
