package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	forgeerrors "github.com/alexisbeaulieu97/forgeui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateProject performs schema and cross-field validation on a project.
func ValidateProject(p *Project) error {
	if p == nil {
		return forgeerrors.NewValidationError("project", "project is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(p); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(p.Components))
	for i, c := range p.Components {
		id := strings.TrimSpace(c.ID)
		if first, exists := seen[id]; exists {
			return forgeerrors.NewValidationError(fieldForComponent(i, "id"), fmt.Sprintf("duplicate component id %q (first used by components[%d])", c.ID, first), nil)
		}
		seen[id] = i

		for j, a := range c.Animations {
			if strings.TrimSpace(a.Name) == "" {
				return forgeerrors.NewValidationError(fieldForComponent(i, fmt.Sprintf("animations[%d].name", j)), "animation name is required", nil)
			}
		}
	}

	return nil
}
