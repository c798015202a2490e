package chainwatch

import "github.com/ethereum/go-ethereum/common"

type Address = common.Address

type Hash = common.Hash

const HashLength = common.HashLength

func PtrTo[T any](v T) *T {
	return &v
}
