package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("asha@example.com"))
	assert.True(t, IsValidEmail("  asha@example.com  "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidSoilType(t *testing.T) {
	assert.True(t, IsValidSoilType("loam"))
	assert.True(t, IsValidSoilType("clay"))
	assert.True(t, IsValidSoilType("sandy"))
	assert.False(t, IsValidSoilType("peat"))
	assert.False(t, IsValidSoilType(""))
	assert.False(t, IsValidSoilType("Loam"))
}

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  Pune,IN  ")
	assert.True(t, ok)
	assert.Equal(t, "Pune,IN", trimmed)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
}
