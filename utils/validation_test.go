package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesSSN(t *testing.T) {
	for _, ok := range []string{"123-45-6789", "123456789", "123-456789", "12345-6789"} {
		assert.True(t, MatchesSSN(ok), ok)
	}
	for _, bad := range []string{"", "12-345-6789", "1234567890", "abc-de-fghi", "123-45-678"} {
		assert.False(t, MatchesSSN(bad), bad)
	}
}

type sample struct {
	FullName string `json:"full_name" validate:"required,max=5"`
	SSN      string `json:"ssn" validate:"ssn"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(sample{FullName: "toolong", SSN: "12", Email: "nope"})
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"full_name": "Name must be less than 5 characters",
		"ssn":       "Invalid SSN format (XXX-XX-XXXX)",
		"email":     "Invalid email address",
	}, ve.Fields)
	assert.Contains(t, ve.Error(), "validation failed")
}

func TestValidateStruct_EmptySSNPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{FullName: "Jane"}))

	ve, ok := IsValidationError(ValidateStruct(sample{}))
	require.True(t, ok)
	assert.Equal(t, "Name is required", ve.Fields["full_name"])
}
