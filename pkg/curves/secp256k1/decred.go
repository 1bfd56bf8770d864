package secp256k1

import (
	"fmt"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ToPublicKey converts u through its compressed encoding.
func ToPublicKey(u Public) (*decred.PublicKey, error) {
	b := Encode(u)
	pk, err := decred.ParsePubKey(b[:])
	if err != nil {
		return nil, fmt.Errorf("secp256k1: convert point: %w", err)
	}
	return pk, nil
}

func FromPublicKey(pk *decred.PublicKey) (Public, error) {
	return Decode(pk.SerializeCompressed())
}

func ScalarToModN(s Scalar) *decred.ModNScalar {
	b := ScalarBytes(s)
	var m decred.ModNScalar
	m.SetBytes(&b)
	return &m
}

func ScalarFromModN(m *decred.ModNScalar) Scalar {
	b := m.Bytes()
	// ModNScalar is always reduced.
	s, _ := ScalarFromBytes(b[:])
	return s
}
