package transferrequest

import (
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

// customValidations are the tags TransferRequest uses on top of the built-in ones.
var customValidations = map[string]validator.Func{
	"algoaddr": func(field validator.FieldLevel) bool {
		return IsValidAddress(field.Field().String())
	},
	"decimalamount": func(field validator.FieldLevel) bool {
		_, err := amountconversion.ParseAmount(field.Field().String())
		return err == nil
	},
}

func newValidator() *validator.Validate {
	validate := validator.New()
	err := registerValidations(validate, customValidations)
	if err != nil {
		panic(err)
	}
	return validate
}

func registerValidations(validate *validator.Validate, validations map[string]validator.Func) error {
	for tag, validation := range validations {
		err := validate.RegisterValidation(tag, validation)
		if err != nil {
			return errors.Wrapf(err, "couldn't register the %s validation", tag)
		}
	}
	return nil
}

// Validate checks the fields of a transfer request. Failures are reported as
// ErrInvalidTransferRequest listing every invalid field.
func Validate(request *model.TransferRequest) error {
	if request == nil {
		return ruleerrors.NewErrInvalidTransferRequest([]string{"TransferRequest"})
	}
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.WithStack(err)
	}
	invalidFields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		invalidFields = append(invalidFields, fieldError.StructField())
	}
	return ruleerrors.NewErrInvalidTransferRequest(invalidFields)
}
