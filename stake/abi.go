package stake

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodGetStakedAmount = "getStakedAmount"
	methodGetStakedTime   = "getStakedTime"
)

// necoStakeABI holds the view methods of the NECO staking contract used by the service
const necoStakeABI = `[
	{"inputs":[{"internalType":"address","name":"account","type":"address"}],"name":"getStakedAmount","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"account","type":"address"}],"name":"getStakedTime","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// NecoStakeABI returns the parsed ABI of the NECO staking contract
func NecoStakeABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(necoStakeABI))
}
