package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fkerrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// convertValidationError normalizes validator errors into fieldkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fkerrors.NewValidationError(field, msg, err)
	}

	return fkerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName reports the namespace using the yaml key names registered
// on the validator, without the root type.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
