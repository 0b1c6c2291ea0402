package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"01012345678", true},
		{"+201012345678", true},
		{" 01012345678 ", true},
		{"0101", false},
		{"01012-345678", false},
		{"", false},
		{"phone-number", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidOptionID(t *testing.T) {
	assert.True(t, IsValidOptionID("a"))
	assert.True(t, IsValidOptionID("opt_2"))
	assert.False(t, IsValidOptionID(""))
	assert.False(t, IsValidOptionID("has space"))
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("").WithRequired(false).WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())
	assert.True(t, NewStringValidation("abc").WithMinLength(3).WithMaxLength(3).Validate())
}

type registerPayload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,phone"`
}

func TestRegisterUsesJSONNamesAndPhoneTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	err := v.Struct(registerPayload{Name: "A", Phone: "123"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)

	msgs := []string{FieldMessage(verrs[0]), FieldMessage(verrs[1])}
	assert.Contains(t, msgs, "name must be at least 2 characters")
	assert.Contains(t, msgs, "phone must be a valid phone number")

	assert.NoError(t, v.Struct(registerPayload{Name: "Ahmed", Phone: "01012345678"}))
}

func TestRegisterBindingValidators(t *testing.T) {
	assert.NoError(t, RegisterBindingValidators())
}
