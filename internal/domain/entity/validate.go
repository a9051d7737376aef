package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"transport-data-service/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks an entity's struct tags and returns a ValidationError for
// the first violated field. It runs before any store call; foreign keys are
// only checked by the store's own constraints.
func Validate(e interface{}) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errs.ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fmt.Sprintf("failed %q validation", fe.Tag()),
		}
	}
	return &errs.ValidationError{Message: err.Error()}
}
