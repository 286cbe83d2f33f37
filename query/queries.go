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
	"fmt"

	"github.com/blinklabs-io/goiroha/cbor"
)

// Query type constants
const (
	QueryTypeGetAccount                  = 0
	QueryTypeGetAccountAssets            = 1
	QueryTypeGetAccountDetail            = 2
	QueryTypeGetAccountTransactions      = 3
	QueryTypeGetAccountAssetTransactions = 4
	QueryTypeGetTransactions             = 5
	QueryTypeGetSignatories              = 6
	QueryTypeGetAssetInfo                = 7
	QueryTypeGetRoles                    = 8
	QueryTypeGetRolePermissions          = 9
)

// Provide a common interface for payload utility functions
type Payload interface {
	SetCbor([]byte)
	Cbor() []byte
	Type() uint8
}

type PayloadBase struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_         struct{} `cbor:",toarray"`
	QueryType uint8
}

func (p *PayloadBase) Type() uint8 {
	return p.QueryType
}

// PayloadFromCbor decodes the provided CBOR into the payload type named by its
// leading query type tag
func PayloadFromCbor(data []byte) (Payload, error) {
	tmpPayload, err := cbor.DecodeById(
		data,
		map[int]any{
			QueryTypeGetAccount:                  &GetAccount{},
			QueryTypeGetAccountAssets:            &GetAccountAssets{},
			QueryTypeGetAccountDetail:            &GetAccountDetail{},
			QueryTypeGetAccountTransactions:      &GetAccountTransactions{},
			QueryTypeGetAccountAssetTransactions: &GetAccountAssetTransactions{},
			QueryTypeGetTransactions:             &GetTransactions{},
			QueryTypeGetSignatories:              &GetSignatories{},
			QueryTypeGetAssetInfo:                &GetAssetInfo{},
			QueryTypeGetRoles:                    &GetRoles{},
			QueryTypeGetRolePermissions:          &GetRolePermissions{},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to decode query payload: %w", err)
	}
	ret, ok := tmpPayload.(Payload)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", tmpPayload)
	}
	return ret, nil
}

// GetAccount requests the account record for the given account
type GetAccount struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetAccount(accountId string) *GetAccount {
	return &GetAccount{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAccount,
		},
		AccountId: accountId,
	}
}

func (g *GetAccount) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAccount) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetAccountAssets requests the asset balances held by the given account
type GetAccountAssets struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetAccountAssets(accountId string) *GetAccountAssets {
	return &GetAccountAssets{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAccountAssets,
		},
		AccountId: accountId,
	}
}

func (g *GetAccountAssets) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAccountAssets) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetAccountDetail requests the key/value detail attached to the given account
type GetAccountDetail struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetAccountDetail(accountId string) *GetAccountDetail {
	return &GetAccountDetail{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAccountDetail,
		},
		AccountId: accountId,
	}
}

func (g *GetAccountDetail) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAccountDetail) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetAccountTransactions requests the transactions created by the given account
type GetAccountTransactions struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetAccountTransactions(accountId string) *GetAccountTransactions {
	return &GetAccountTransactions{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAccountTransactions,
		},
		AccountId: accountId,
	}
}

func (g *GetAccountTransactions) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAccountTransactions) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetAccountAssetTransactions requests the transactions involving the given
// account and asset
type GetAccountAssetTransactions struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
	AssetId   string
}

func NewGetAccountAssetTransactions(
	accountId string,
	assetId string,
) *GetAccountAssetTransactions {
	return &GetAccountAssetTransactions{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAccountAssetTransactions,
		},
		AccountId: accountId,
		AssetId:   assetId,
	}
}

func (g *GetAccountAssetTransactions) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAccountAssetTransactions) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetTransactions requests specific transactions by hash. The hash list is
// order-preserving and may be empty
type GetTransactions struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
	TxHashes  []string
}

func NewGetTransactions(
	accountId string,
	txHashes []string,
) *GetTransactions {
	// Copy the hash list so later caller mutation can't reach the payload.
	// An empty list always encodes as an empty CBOR array, never null
	tmpHashes := make([]string, len(txHashes))
	copy(tmpHashes, txHashes)
	return &GetTransactions{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetTransactions,
		},
		AccountId: accountId,
		TxHashes:  tmpHashes,
	}
}

func (g *GetTransactions) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetTransactions) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetSignatories requests the signatory public keys of the given account
type GetSignatories struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetSignatories(accountId string) *GetSignatories {
	return &GetSignatories{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetSignatories,
		},
		AccountId: accountId,
	}
}

func (g *GetSignatories) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetSignatories) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetAssetInfo requests the asset definition for the given asset
type GetAssetInfo struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
	AssetId   string
}

func NewGetAssetInfo(accountId string, assetId string) *GetAssetInfo {
	return &GetAssetInfo{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetAssetInfo,
		},
		AccountId: accountId,
		AssetId:   assetId,
	}
}

func (g *GetAssetInfo) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetAssetInfo) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetRoles requests the list of roles known to the ledger
type GetRoles struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
}

func NewGetRoles(accountId string) *GetRoles {
	return &GetRoles{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetRoles,
		},
		AccountId: accountId,
	}
}

func (g *GetRoles) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetRoles) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

// GetRolePermissions requests the permissions granted by the given role
type GetRolePermissions struct {
	cbor.DecodeStoreCbor
	PayloadBase
	AccountId string
	RoleId    string
}

func NewGetRolePermissions(
	accountId string,
	roleId string,
) *GetRolePermissions {
	return &GetRolePermissions{
		PayloadBase: PayloadBase{
			QueryType: QueryTypeGetRolePermissions,
		},
		AccountId: accountId,
		RoleId:    roleId,
	}
}

func (g *GetRolePermissions) UnmarshalCBOR(cborData []byte) error {
	return g.UnmarshalCbor(cborData, g)
}

func (g *GetRolePermissions) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}
