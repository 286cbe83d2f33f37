// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	SeedSize       = ed25519.SeedSize
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize

	KeyHashSize = 28

	// Human-readable prefix for bech32-rendered creator identities
	CreatorHrp = "query_vk"
)

// KeyPair wraps an ed25519 keypair used to sign queries. The private key is
// held by reference and never copied out except via PrivateKey()
type KeyPair struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

// New wraps externally supplied key material without validating it, for
// callers holding key bytes from an external key manager. Queries signed
// with unusable material fail at signing time rather than construction
func New(pub ed25519.PublicKey, priv ed25519.PrivateKey) *KeyPair {
	return &KeyPair{pub: pub, priv: priv}
}

// Generate creates a new random keypair
func Generate() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return &KeyPair{pub: pub, priv: priv}, nil
}

// FromSeed creates a keypair from a 32-byte ed25519 seed
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf(
			"seed must be %d bytes, got %d",
			SeedSize,
			len(seed),
		)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("unexpected public key type")
	}
	return &KeyPair{pub: pub, priv: priv}, nil
}

// FromHex creates a keypair from a hex-encoded 32-byte seed or 64-byte
// private key
func FromHex(privHex string) (*KeyPair, error) {
	privBytes, err := hex.DecodeString(privHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key hex: %w", err)
	}
	switch len(privBytes) {
	case SeedSize:
		return FromSeed(privBytes)
	case PrivateKeySize:
		return FromSeed(privBytes[:SeedSize])
	default:
		return nil, fmt.Errorf(
			"private key must be %d or %d bytes, got %d",
			SeedSize,
			PrivateKeySize,
			len(privBytes),
		)
	}
}

func (k *KeyPair) PublicKey() ed25519.PublicKey {
	return k.pub
}

func (k *KeyPair) PrivateKey() ed25519.PrivateKey {
	return k.priv
}

func (k *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.pub)
}

// KeyHash returns the blake2b-224 hash of the public key
func (k *KeyPair) KeyHash() KeyHash {
	return KeyHashFrom(k.pub)
}

// CreatorId returns the creator identity derived from the public key: the
// bech32 encoding of the public key hash under the query_vk prefix. This is
// the value stamped into signed queries as the creator account
func (k *KeyPair) CreatorId() string {
	return k.KeyHash().Bech32(CreatorHrp)
}

// Sign signs the provided message with the private key
func (k *KeyPair) Sign(msg []byte) ([]byte, error) {
	if len(k.priv) != PrivateKeySize {
		return nil, fmt.Errorf(
			"invalid private key size: %d",
			len(k.priv),
		)
	}
	return ed25519.Sign(k.priv, msg), nil
}

type KeyHash [KeyHashSize]byte

func NewKeyHash(data []byte) KeyHash {
	h := KeyHash{}
	copy(h[:], data)
	return h
}

// KeyHashFrom generates a blake2b-224 hash from the provided data
func KeyHashFrom(data []byte) KeyHash {
	tmpHash, err := blake2b.New(KeyHashSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return KeyHash(tmpHash.Sum(nil))
}

func (h KeyHash) String() string {
	return hex.EncodeToString(h[:])
}

func (h KeyHash) Bytes() []byte {
	return h[:]
}

func (h KeyHash) Bech32(prefix string) string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(h[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// ValidatePublicKey checks that the provided bytes are a canonical ed25519
// public key: correct size, a valid curve point, and not in the small-order
// subgroup
func ValidatePublicKey(pub []byte) error {
	if len(pub) != PublicKeySize {
		return fmt.Errorf("invalid public key size: %d", len(pub))
	}
	point := &edwards25519.Point{}
	if _, err := point.SetBytes(pub); err != nil {
		return fmt.Errorf("invalid public key point: %w", err)
	}
	isSmallOrder := (&edwards25519.Point{}).MultByCofactor(point).
		Equal(edwards25519.NewIdentityPoint()) == 1
	if isSmallOrder {
		return errors.New("public key is a small-order point")
	}
	return nil
}
