package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	UserID    string `validate:"required,uuid"`
	StartDate string `validate:"required,dateonly"`
	Limit     int    `validate:"omitempty,min=1,max=50"`
}

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:    "b4a2c5cc-9e05-477f-9b75-19d2cd20f1a4",
			StartDate: "2024-01-01",
			Limit:     10,
		})
		assert.NoError(t, err)
	})

	t.Run("missing required fields fail", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["userid"])
		assert.Equal(t, "This field is required", fields["startdate"])
	})

	t.Run("bad uuid fails", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{UserID: "nope", StartDate: "2024-01-01"})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be a valid UUID", fields["userid"])
	})

	t.Run("bad date fails", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:    "b4a2c5cc-9e05-477f-9b75-19d2cd20f1a4",
			StartDate: "01/01/2024",
		})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Must be a date in YYYY-MM-DD format", fields["startdate"])
	})

	t.Run("limit out of range fails", func(t *testing.T) {
		err := v.ValidateStruct(validatedRequest{
			UserID:    "b4a2c5cc-9e05-477f-9b75-19d2cd20f1a4",
			StartDate: "2024-01-01",
			Limit:     100,
		})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Contains(t, fields["limit"], "at most")
	})
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validation error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
