package app

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"game_store/internal/models"
)

var (
	minPrice = decimal.RequireFromString("10.00")
	maxPrice = decimal.RequireFromString("999.99")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		price, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		if err != nil || price.Exponent() < -2 {
			return false
		}
		return price.GreaterThanOrEqual(minPrice) && price.LessThanOrEqual(maxPrice)
	})
}

// formMessages maps "<field>.<tag>" to the message shown next to the field.
var formMessages = map[string]string{
	"email.notblank":           "Email is required",
	"password.notblank":        "Password is required",
	"confirmPassword.notblank": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"title.notblank":           "Title is required",
	"title.max":                "Title must be at most 24 characters",
	"category.required":        "Category is required",
	"category.category":        "Choose a valid category",
	"price.required":           "Price is required",
	"price.price":              "Price must be between 10.00 and 999.99",
}

// validateForm checks form against its validate tags and returns the failures keyed
// by JSON field name, or nil when the form is valid.
func validateForm(form any) models.FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return models.FieldErrors{models.GeneralError: err.Error()}
	}

	fieldErrors := make(models.FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		msg, ok := formMessages[e.Field()+"."+e.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fieldErrors[e.Field()] = msg
	}
	return fieldErrors
}
