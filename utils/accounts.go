package utils

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type Address struct {
	Bytes  []byte
	Bech32 string
}

// TestAddress returns a random account address with the sdk's configured prefix.
func TestAddress() Address {
	key := secp256k1.GenPrivKey()
	bytes := key.PubKey().Address().Bytes()

	return Address{
		Bytes:  bytes,
		Bech32: generateAddress(sdk.GetConfig().GetBech32AccountAddrPrefix(), bytes),
	}
}

// TestAddresses returns n random account addresses.
func TestAddresses(n int) []Address {
	addrs := make([]Address, n)
	for i := range addrs {
		addrs[i] = TestAddress()
	}
	return addrs
}

func generateAddress(prefix string, bytes []byte) string {
	address, err := sdk.Bech32ifyAddressBytes(prefix, bytes)
	if err != nil {
		panic("error during test address creation")
	}
	return address
}
