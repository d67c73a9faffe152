package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/pawscare/vet-clinic-site/utils"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the custom tags and reports JSON field names in errors
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return utils.IsTenDigitPhone(fl.Field().String())
		})
		// an empty logo is allowed; it clears the stored one
		_ = v.RegisterValidation("logo_url", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return strings.TrimSpace(value) == "" || utils.ValidateLogoURL(value) == nil
		})
	})
}

// validateVar runs a single validation tag against a value, e.g. validateVar(email, "email")
func validateVar(value interface{}, tag string) error {
	registerValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validator engine unavailable")
	}
	return v.Var(value, tag)
}

// bindJSON decodes and validates the request body, answering 400 itself on failure
func bindJSON(c *gin.Context, obj interface{}) bool {
	registerValidators()

	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "Invalid request data", validationDetails(err)...)
		return false
	}
	return true
}

func validationDetails(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: fmt.Sprintf("must be a %s", typeName(typeErr.Type))}}
	}

	return []FieldError{{Field: "body", Message: "must be a valid JSON object"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "phone10":
		return "must be exactly 10 digits"
	case "logo_url":
		return fmt.Sprintf("must be an image data URI under %d KiB, an %s path or an http(s) URL",
			utils.MaxInlineLogoSize/1024, utils.ObjectPathPrefix)
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "max":
		return boundMessage(fe)
	}
	return "is invalid"
}

func boundMessage(fe validator.FieldError) string {
	word := "at least"
	if fe.Tag() == "max" {
		word = "at most"
	}
	switch fe.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("must contain %s %s item(s)", word, fe.Param())
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters", word, fe.Param())
	}
	if fe.Field() == "rating" {
		return "must be between 1 and 5"
	}
	return fmt.Sprintf("must be %s %s", word, fe.Param())
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "whole number"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	}
	return "valid value"
}

func optionalString(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	v := *value
	return &v
}

// patchOptional applies a patch value to an optional field; an empty string clears it
func patchOptional(dst **string, value *string) {
	if value != nil {
		*dst = optionalString(value)
	}
}

func optionalList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
