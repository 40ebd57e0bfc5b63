package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `validate:"required"`
	Status string `validate:"omitempty,oneof=yes no"`
	Count  int    `validate:"omitempty,min=1"`
	Link   string `validate:"omitempty,url"`
	Key    string `validate:"omitempty,hexadecimal"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(sample{Status: "later", Count: -1, Link: "nope", Key: "xyz"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field Name is a required field, "+
		"field Status must be one of: yes no, "+
		"field Count is below the minimum of 1, "+
		"field Link is not a valid URL, "+
		"field Key is not valid", resp.Error)
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}
