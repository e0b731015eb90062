package service

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/billing/internal/entity"
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Lets numeric tags such as gte=0 apply to money amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	return v
}

func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &entity.ValidationError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}

	return err
}
