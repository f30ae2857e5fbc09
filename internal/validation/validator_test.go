package validation

import (
	"testing"

	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{
		Name:            "Ann",
		Email:           "ann@x.com",
		Password:        "pw12",
		ConfirmPassword: "pw12",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldKeyedMessages(t *testing.T) {
	v := New()

	err := v.Validate(signupForm{
		Email:           "ann@x.com",
		Password:        "pw12",
		ConfirmPassword: "other",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	// All failures reported at once, keyed by JSON field name.
	assert.Equal(t, "is required", domainErr.Details["name"])
	assert.Equal(t, "must match Password", domainErr.Details["confirm_password"])
	assert.NotContains(t, domainErr.Details, "email")
}

func TestValidate_NoFormatRules(t *testing.T) {
	v := New()

	// "not-an-email" passes: presence is the only requirement.
	err := v.Validate(signupForm{
		Name:            "Ann",
		Email:           "not-an-email",
		Password:        "x",
		ConfirmPassword: "x",
	})
	assert.NoError(t, err)
}
