package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,is-role"`
	Level string `json:"level" validate:"omitempty,is-proficiency"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Role: "STUDENT"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Email: "a@b.edu", Role: "ADMIN"}))
	require.NoError(t, v.Validate(&sampleRequest{Email: "a@b.edu", Role: "trainer"}))
	require.NoError(t, v.Validate(&sampleRequest{Email: "a@b.edu", Role: "STUDENT", Level: "ADVANCED"}))

	err := v.Validate(&sampleRequest{Email: "a@b.edu", Role: "WIZARD"})
	require.Error(t, err)

	err = v.Validate(&sampleRequest{Email: "a@b.edu", Role: "STUDENT", Level: "EXPERT"})
	require.Error(t, err)
}
