package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidType(t *testing.T) {
	assert.True(t, IsValidType(TypeGovernmentID))
	assert.True(t, IsValidType(TypeOther))
	assert.False(t, IsValidType("PASSPORT"))
	assert.False(t, IsValidType(""))
}

func TestHasAllRequiredApproved(t *testing.T) {
	t.Run("all eight approved", func(t *testing.T) {
		assert.True(t, HasAllRequiredApproved(RequiredTypes))
	})

	t.Run("seven of eight is not enough", func(t *testing.T) {
		assert.False(t, HasAllRequiredApproved(RequiredTypes[:7]))
	})

	t.Run("other does not stand in for a required type", func(t *testing.T) {
		partial := append([]string{TypeOther}, RequiredTypes[:7]...)
		assert.False(t, HasAllRequiredApproved(partial))
	})

	t.Run("duplicates and extras are fine", func(t *testing.T) {
		types := append([]string{TypeOther, TypeResume, TypeResume}, RequiredTypes...)
		assert.True(t, HasAllRequiredApproved(types))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.False(t, HasAllRequiredApproved(nil))
	})
}
