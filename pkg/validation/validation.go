// Package validation checks requests against the declarative rules bound to their type.
//
// Rules are `validate` struct tags (github.com/go-playground/validator). Requests with
// rules tags cannot express implement SelfValidating. Every violation is reported, not
// only the first.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DioGolang/GoSlices/pkg/apperr"
	"github.com/go-playground/validator/v10"
)

// SelfValidating is implemented by requests carrying rules beyond struct tags.
type SelfValidating interface {
	Validate() []apperr.Violation
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Check returns nil or an *apperr.Error of kind Validation listing every violation.
func (v *Validator) Check(req any) error {
	var violations []apperr.Violation

	if isStruct(req) {
		err := v.v.Struct(req)
		var fieldErrs validator.ValidationErrors
		switch {
		case err == nil:
		case errors.As(err, &fieldErrs):
			for _, fe := range fieldErrs {
				violations = append(violations, apperr.Violation{
					Field:   fe.Field(),
					Message: message(fe),
				})
			}
		default:
			return apperr.Internal("validation setup", err)
		}
	}

	if sv, ok := req.(SelfValidating); ok {
		violations = append(violations, sv.Validate()...)
	}

	if len(violations) == 0 {
		return nil
	}
	return apperr.Validation(violations...)
}

func isStruct(req any) bool {
	t := reflect.TypeOf(req)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be less than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "ne":
		return "must not be " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "len":
		return "must have length " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gtfield":
		return "must be after " + fe.Param()
	default:
		return "failed rule " + fe.Tag()
	}
}
