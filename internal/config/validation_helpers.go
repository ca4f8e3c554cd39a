package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

// convertValidationError normalizes validator errors into forgeui validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return forgeerrors.NewValidationError(field, msg, err)
	}

	return forgeerrors.NewValidationError("project", err.Error(), err)
}

// yamlishFieldName turns "Project.components[2].id" into "components[2].id".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
