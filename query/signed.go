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

package query

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/blinklabs-io/goiroha/cbor"
	"github.com/blinklabs-io/goiroha/keypair"
	"golang.org/x/crypto/blake2b"
)

// Signature pairs the signing public key with the signature bytes
type Signature struct {
	cbor.StructAsArray
	PublicKey []byte
	Signature []byte
}

// queryBody is the canonical signing input: the draft fields minus the
// signature, encoded as a CBOR array. The signature covers the blake2b-256
// digest of this encoding
type queryBody struct {
	cbor.StructAsArray
	Creator     string
	Counter     uint64
	CreatedTime uint64
	Payload     cbor.RawMessage
}

// SignedQuery is an immutable signed query snapshot produced by Builder.Sign.
// It does not alias the Builder's draft state
type SignedQuery struct {
	creator     string
	counter     uint64
	createdTime uint64
	payload     Payload
	signature   Signature
}

// Sign serializes the current draft, signs it, and returns an immutable
// SignedQuery. The draft is left untouched; the Builder remains usable and
// repeated calls return independent instances with identical signatures.
// Returns a ValidationError when no payload has been selected and a
// CryptoError when the signing key is unusable
func (b *Builder) Sign() (*SignedQuery, error) {
	if b.payload == nil {
		return nil, ValidationError{Reason: "no payload selected"}
	}
	if b.counter == 0 {
		return nil, ValidationError{Reason: "query counter must be positive"}
	}
	if err := keypair.ValidatePublicKey(b.keypair.PublicKey()); err != nil {
		return nil, CryptoError{Op: "signing", Err: err}
	}
	payloadCbor, err := cbor.Encode(b.payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query payload: %w", err)
	}
	digest, err := signingDigest(
		b.creator,
		b.counter,
		b.createdTime,
		payloadCbor,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query body: %w", err)
	}
	sig, err := b.keypair.Sign(digest)
	if err != nil {
		return nil, CryptoError{Op: "signing", Err: err}
	}
	// Snapshot the payload by round-tripping its canonical CBOR so the
	// returned query doesn't alias the draft
	payloadCopy, err := PayloadFromCbor(payloadCbor)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot query payload: %w", err)
	}
	pubKey := make([]byte, len(b.keypair.PublicKey()))
	copy(pubKey, b.keypair.PublicKey())
	return &SignedQuery{
		creator:     b.creator,
		counter:     b.counter,
		createdTime: b.createdTime,
		payload:     payloadCopy,
		signature: Signature{
			PublicKey: pubKey,
			Signature: sig,
		},
	}, nil
}

// signingDigest computes the blake2b-256 digest of the canonical body encoding
func signingDigest(
	creator string,
	counter uint64,
	createdTime uint64,
	payloadCbor []byte,
) ([]byte, error) {
	body := queryBody{
		Creator:     creator,
		Counter:     counter,
		CreatedTime: createdTime,
		Payload:     cbor.RawMessage(payloadCbor),
	}
	bodyCbor, err := cbor.Encode(&body)
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(bodyCbor)
	return digest[:], nil
}

func (q *SignedQuery) Creator() string {
	return q.creator
}

func (q *SignedQuery) Counter() uint64 {
	return q.counter
}

func (q *SignedQuery) CreatedTime() uint64 {
	return q.createdTime
}

// Payload returns the query payload. The returned value is the query's own
// snapshot and must be treated as read-only
func (q *SignedQuery) Payload() Payload {
	return q.payload
}

// Signature returns a copy of the signature entry
func (q *SignedQuery) Signature() Signature {
	pubKey := make([]byte, len(q.signature.PublicKey))
	copy(pubKey, q.signature.PublicKey)
	sig := make([]byte, len(q.signature.Signature))
	copy(sig, q.signature.Signature)
	return Signature{
		PublicKey: pubKey,
		Signature: sig,
	}
}

// signedQueryWire is the external CBOR shape of a signed query
type signedQueryWire struct {
	cbor.StructAsArray
	Creator     string
	Counter     uint64
	CreatedTime uint64
	Payload     cbor.RawMessage
	Signature   Signature
}

// MarshalCBOR encodes the signed query for transmission
func (q *SignedQuery) MarshalCBOR() ([]byte, error) {
	payloadCbor := q.payload.Cbor()
	if payloadCbor == nil {
		var err error
		payloadCbor, err = cbor.Encode(q.payload)
		if err != nil {
			return nil, err
		}
	}
	wire := signedQueryWire{
		Creator:     q.creator,
		Counter:     q.counter,
		CreatedTime: q.createdTime,
		Payload:     cbor.RawMessage(payloadCbor),
		Signature:   q.signature,
	}
	return cbor.Encode(&wire)
}

// SignedQueryFromCbor decodes a signed query from its wire encoding. This is
// the receiving side of the boundary contract: the decoded query verifies
// against the same digest the sender signed
func SignedQueryFromCbor(data []byte) (*SignedQuery, error) {
	var wire signedQueryWire
	if _, err := cbor.Decode(data, &wire); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	payload, err := PayloadFromCbor(wire.Payload)
	if err != nil {
		return nil, err
	}
	return &SignedQuery{
		creator:     wire.Creator,
		counter:     wire.Counter,
		createdTime: wire.CreatedTime,
		payload:     payload,
		signature:   wire.Signature,
	}, nil
}

// Verify checks the query's signature against its own signature entry
func (q *SignedQuery) Verify() error {
	payloadCbor := q.payload.Cbor()
	if payloadCbor == nil {
		var err error
		payloadCbor, err = cbor.Encode(q.payload)
		if err != nil {
			return err
		}
	}
	digest, err := signingDigest(
		q.creator,
		q.counter,
		q.createdTime,
		payloadCbor,
	)
	if err != nil {
		return err
	}
	return VerifySignature(
		q.signature.PublicKey,
		q.signature.Signature,
		digest,
	)
}

// VerifySignature verifies an ed25519 signature against the provided public
// key and message
func VerifySignature(pubKey, sig, msg []byte) error {
	if len(pubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid public key size: %d", len(pubKey))
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("invalid signature size: %d", len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return errors.New("signature verification failed")
	}
	return nil
}
