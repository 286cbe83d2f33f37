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
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/goiroha/cbor"
)

type testDefinition struct {
	CborHex   string
	Payload   Payload
	QueryType uint8
}

var tests = []testDefinition{
	{
		CborHex:   "82006a626f6240646f6d61696e",
		Payload:   NewGetAccount("bob@domain"),
		QueryType: QueryTypeGetAccount,
	},
	{
		CborHex:   "82016a626f6240646f6d61696e",
		Payload:   NewGetAccountAssets("bob@domain"),
		QueryType: QueryTypeGetAccountAssets,
	},
	{
		CborHex:   "82026a626f6240646f6d61696e",
		Payload:   NewGetAccountDetail("bob@domain"),
		QueryType: QueryTypeGetAccountDetail,
	},
	{
		CborHex:   "82036a626f6240646f6d61696e",
		Payload:   NewGetAccountTransactions("bob@domain"),
		QueryType: QueryTypeGetAccountTransactions,
	},
	{
		CborHex:   "83046a626f6240646f6d61696e6b636f696e23646f6d61696e",
		Payload:   NewGetAccountAssetTransactions("bob@domain", "coin#domain"),
		QueryType: QueryTypeGetAccountAssetTransactions,
	},
	{
		CborHex:   "83056a626f6240646f6d61696e80",
		Payload:   NewGetTransactions("bob@domain", nil),
		QueryType: QueryTypeGetTransactions,
	},
	{
		CborHex:   "83056a626f6240646f6d61696e82626161626262",
		Payload:   NewGetTransactions("bob@domain", []string{"aa", "bb"}),
		QueryType: QueryTypeGetTransactions,
	},
	{
		CborHex:   "82066a626f6240646f6d61696e",
		Payload:   NewGetSignatories("bob@domain"),
		QueryType: QueryTypeGetSignatories,
	},
	{
		CborHex:   "83076a626f6240646f6d61696e6b636f696e23646f6d61696e",
		Payload:   NewGetAssetInfo("bob@domain", "coin#domain"),
		QueryType: QueryTypeGetAssetInfo,
	},
	{
		CborHex:   "82086a626f6240646f6d61696e",
		Payload:   NewGetRoles("bob@domain"),
		QueryType: QueryTypeGetRoles,
	},
	{
		CborHex:   "83096a626f6240646f6d61696e6561646d696e",
		Payload:   NewGetRolePermissions("bob@domain", "admin"),
		QueryType: QueryTypeGetRolePermissions,
	},
}

func TestPayloadDecode(t *testing.T) {
	for _, test := range tests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		payload, err := PayloadFromCbor(cborData)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if payload.Type() != test.QueryType {
			t.Fatalf(
				"decoded payload had wrong query type: got %d, wanted %d",
				payload.Type(),
				test.QueryType,
			)
		}
		// Decoded payloads must retain the original CBOR
		if hex.EncodeToString(payload.Cbor()) != test.CborHex {
			t.Fatalf(
				"decoded payload did not retain original CBOR\n  got:    %s\n  wanted: %s",
				hex.EncodeToString(payload.Cbor()),
				test.CborHex,
			)
		}
		// Set the raw CBOR so the comparison should succeed
		test.Payload.SetCbor(cborData)
		if !reflect.DeepEqual(payload, test.Payload) {
			t.Fatalf(
				"CBOR did not decode to expected payload object\n  got:    %#v\n  wanted: %#v",
				payload,
				test.Payload,
			)
		}
	}
}

func TestPayloadEncode(t *testing.T) {
	for _, test := range tests {
		cborData, err := cbor.Encode(test.Payload)
		if err != nil {
			t.Fatalf("failed to encode payload to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"payload did not encode to expected CBOR\n  got:    %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestPayloadFromCborUnknownType(t *testing.T) {
	// [99, "bob@domain"]
	cborData, err := hex.DecodeString("8218636a626f6240646f6d61696e")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	if _, err := PayloadFromCbor(cborData); err == nil {
		t.Fatal("expected error for unknown query type, got none")
	}
}

func TestPayloadReEncode(t *testing.T) {
	// A decoded payload must re-encode to the same canonical CBOR through
	// the generic encode path
	for _, test := range tests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		payload, err := PayloadFromCbor(cborData)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		reEncoded, err := cbor.Encode(payload)
		if err != nil {
			t.Fatalf("failed to re-encode payload: %s", err)
		}
		if cborHex := hex.EncodeToString(reEncoded); cborHex != test.CborHex {
			t.Fatalf(
				"payload did not re-encode to original CBOR\n  got:    %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestGetTransactionsHashOrder(t *testing.T) {
	hashes := []string{"cc", "aa", "bb"}
	payload := NewGetTransactions("bob@domain", hashes)
	if !reflect.DeepEqual(payload.TxHashes, hashes) {
		t.Fatalf(
			"hash order not preserved: got %v, wanted %v",
			payload.TxHashes,
			hashes,
		)
	}
	// Mutating the caller's slice must not reach the payload
	hashes[0] = "zz"
	if payload.TxHashes[0] != "cc" {
		t.Fatal("payload hash list aliases caller slice")
	}
}
