package data

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAvailableQuantity(t *testing.T) {
	t.Parallel()

	value, _ := big.NewInt(0).SetString("123456789012345678901234567890", 10)
	quantity := NewAvailableQuantity(value)
	assert.True(t, quantity.Available)
	assert.Equal(t, value, quantity.Value)

	quantity = NewAvailableQuantity(nil)
	assert.False(t, quantity.Available)
	assert.Equal(t, "0", quantity.Value.String())
}

func TestNewUnavailableQuantity(t *testing.T) {
	t.Parallel()

	quantity := NewUnavailableQuantity()
	assert.False(t, quantity.Available)
	assert.Equal(t, 0, quantity.Value.Sign())
}
