package data

import "math/big"

// StakeQuantity is the outcome of reading one staking value from chain
type StakeQuantity struct {
	Value     *big.Int
	Available bool
}

// NewAvailableQuantity returns a quantity holding a successfully read value
func NewAvailableQuantity(value *big.Int) StakeQuantity {
	if value == nil {
		return NewUnavailableQuantity()
	}

	return StakeQuantity{
		Value:     value,
		Available: true,
	}
}

// NewUnavailableQuantity returns a quantity whose read failed. Its value is zero.
func NewUnavailableQuantity() StakeQuantity {
	return StakeQuantity{
		Value:     big.NewInt(0),
		Available: false,
	}
}

// StakedInfo is the NECO staking position of an address
type StakedInfo struct {
	PublicAddress         string `json:"public_address"`
	StakedAmount          string `json:"staked_amount,omitempty"`
	StakedTime            string `json:"staked_time,omitempty"`
	StakedAmountAvailable *bool  `json:"staked_amount_available,omitempty"`
	StakedTimeAvailable   *bool  `json:"staked_time_available,omitempty"`
}
