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

package cbor

import (
	"encoding/hex"
	"testing"
)

func TestEncodeDeterministicMapOrder(t *testing.T) {
	// Map keys must be sorted regardless of Go's map iteration order
	data := map[string]uint64{
		"b": 2,
		"a": 1,
	}
	expected := "a2616101616202"
	for i := 0; i < 10; i++ {
		cborData, err := Encode(data)
		if err != nil {
			t.Fatalf("failed to encode map: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != expected {
			t.Fatalf(
				"map did not encode deterministically\n  got:    %s\n  wanted: %s",
				cborHex,
				expected,
			)
		}
	}
}

func TestStructAsArrayEncode(t *testing.T) {
	tmp := struct {
		StructAsArray
		Id   uint64
		Name string
	}{
		Id:   3,
		Name: "abc",
	}
	cborData, err := Encode(&tmp)
	if err != nil {
		t.Fatalf("failed to encode struct: %s", err)
	}
	expected := "820363616263"
	if cborHex := hex.EncodeToString(cborData); cborHex != expected {
		t.Fatalf(
			"struct did not encode to expected CBOR\n  got:    %s\n  wanted: %s",
			cborHex,
			expected,
		)
	}
}

func TestListLength(t *testing.T) {
	testDefs := []struct {
		CborHex        string
		ExpectedLength int
	}{
		{CborHex: "80", ExpectedLength: 0},
		{CborHex: "820102", ExpectedLength: 2},
		{CborHex: "83010203", ExpectedLength: 3},
	}
	for _, testDef := range testDefs {
		cborData, err := hex.DecodeString(testDef.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		length, err := ListLength(cborData)
		if err != nil {
			t.Fatalf("failed to determine list length: %s", err)
		}
		if length != testDef.ExpectedLength {
			t.Fatalf(
				"did not get expected list length: got %d, wanted %d",
				length,
				testDef.ExpectedLength,
			)
		}
	}
}

func TestDecodeIdFromList(t *testing.T) {
	testDefs := []struct {
		CborHex    string
		ExpectedId int
	}{
		// [0, "abc"]
		{CborHex: "820063616263", ExpectedId: 0},
		// [7]
		{CborHex: "8107", ExpectedId: 7},
		// [99, "abc"] (id too large for the single-byte shortcut)
		{CborHex: "82186363616263", ExpectedId: 99},
	}
	for _, testDef := range testDefs {
		cborData, err := hex.DecodeString(testDef.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		id, err := DecodeIdFromList(cborData)
		if err != nil {
			t.Fatalf("failed to decode ID from list: %s", err)
		}
		if id != testDef.ExpectedId {
			t.Fatalf(
				"did not get expected ID: got %d, wanted %d",
				id,
				testDef.ExpectedId,
			)
		}
	}
	// Empty list has no ID
	if _, err := DecodeIdFromList([]byte{0x80}); err == nil {
		t.Fatal("expected error decoding ID from empty list, got none")
	}
}

type decodeStoreCborTestObject struct {
	DecodeStoreCbor
	StructAsArray
	Id uint64
}

func (o *decodeStoreCborTestObject) UnmarshalCBOR(data []byte) error {
	return o.UnmarshalCbor(data, o)
}

func TestDecodeStoreCbor(t *testing.T) {
	cborData, err := hex.DecodeString("8105")
	if err != nil {
		t.Fatalf("failed to decode CBOR hex: %s", err)
	}
	var obj decodeStoreCborTestObject
	if _, err := Decode(cborData, &obj); err != nil {
		t.Fatalf("failed to decode CBOR: %s", err)
	}
	if obj.Id != 5 {
		t.Fatalf("did not get expected ID: got %d, wanted 5", obj.Id)
	}
	if hex.EncodeToString(obj.Cbor()) != "8105" {
		t.Fatalf(
			"stored CBOR does not match original: got %s",
			hex.EncodeToString(obj.Cbor()),
		)
	}
}
