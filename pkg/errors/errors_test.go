package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("project.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "project.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: project.yaml:12: unexpected token", err.Error())

	noLine := NewParseError("project.toml", 0, underlying)
	require.Equal(t, "parse error: project.toml: unexpected token", noLine.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].id", "duplicates components[0].id", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].id", validationErr.Field)
	require.Equal(t, "validation error: components[1].id: duplicates components[0].id", err.Error())
	require.Equal(t, "validation error: bad", NewValidationError("", "bad", nil).Error())
}

func TestGenerationErrorIncludesFramework(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no emitter")
	err := NewGenerationError("elm", underlying)

	var generationErr *GenerationError
	require.ErrorAs(t, err, &generationErr)
	require.Equal(t, "elm", generationErr.Framework)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "generation error [elm]: no emitter", err.Error())
}

func TestDeliveryErrorIsDistinctFromGeneration(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewDeliveryError("src/App.jsx", underlying)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, "src/App.jsx", deliveryErr.File)
	require.True(t, stdErrors.Is(err, underlying))

	var generationErr *GenerationError
	require.False(t, stdErrors.As(err, &generationErr))
}

func TestNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var deliveryErr *DeliveryError
	require.Equal(t, "", parseErr.Error())
	require.Nil(t, deliveryErr.Unwrap())
}
