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
	"time"

	"github.com/blinklabs-io/goiroha/keypair"
)

// Builder assembles a single read-only query and signs it. It is a plain
// mutate-in-place value with no internal locking; concurrent use requires one
// Builder per goroutine. The keypair is referenced, not copied, and must
// outlive the Builder
type Builder struct {
	keypair        *keypair.KeyPair
	creator        string
	counter        uint64
	createdTime    uint64
	createdTimeSet bool
	payload        Payload
	clock          func() time.Time
}

type BuilderOptionFunc func(*Builder)

// WithCounter specifies the query counter. It must be positive and defaults
// to 1
func WithCounter(counter uint64) BuilderOptionFunc {
	return func(b *Builder) {
		b.counter = counter
	}
}

// WithCreatedTime specifies the creation time in milliseconds since epoch.
// Defaults to the clock's current time
func WithCreatedTime(createdTime uint64) BuilderOptionFunc {
	return func(b *Builder) {
		b.createdTime = createdTime
		b.createdTimeSet = true
	}
}

// WithClock specifies the time source used for the default creation time
func WithClock(clock func() time.Time) BuilderOptionFunc {
	return func(b *Builder) {
		b.clock = clock
	}
}

// NewBuilder creates a Builder bound to the provided keypair. The creator
// identity is derived from the keypair's public key. Counter and creation
// time are fixed at construction and never mutated afterward
func NewBuilder(kp *keypair.KeyPair, options ...BuilderOptionFunc) *Builder {
	b := &Builder{
		keypair: kp,
		creator: kp.CreatorId(),
		counter: 1,
		clock:   time.Now,
	}
	for _, option := range options {
		option(b)
	}
	if !b.createdTimeSet {
		b.createdTime = uint64(b.clock().UnixMilli()) // #nosec G115
	}
	return b
}

func (b *Builder) Creator() string {
	return b.creator
}

func (b *Builder) Counter() uint64 {
	return b.counter
}

func (b *Builder) CreatedTime() uint64 {
	return b.createdTime
}

// Selected returns true when a payload has already been chosen. Selector
// methods silently replace any existing payload, so callers that chain
// conditionally can check this first
func (b *Builder) Selected() bool {
	return b.payload != nil
}

// Payload returns the currently selected payload, or nil
func (b *Builder) Payload() Payload {
	return b.payload
}

// GetAccount selects an account record query
func (b *Builder) GetAccount(accountId string) *Builder {
	b.payload = NewGetAccount(accountId)
	return b
}

// GetAccountAssets selects an account asset balance query
func (b *Builder) GetAccountAssets(accountId string) *Builder {
	b.payload = NewGetAccountAssets(accountId)
	return b
}

// GetAccountDetail selects an account detail query
func (b *Builder) GetAccountDetail(accountId string) *Builder {
	b.payload = NewGetAccountDetail(accountId)
	return b
}

// GetAccountTransactions selects a query for transactions created by an account
func (b *Builder) GetAccountTransactions(accountId string) *Builder {
	b.payload = NewGetAccountTransactions(accountId)
	return b
}

// GetAccountAssetTransactions selects a query for transactions involving an
// account and asset
func (b *Builder) GetAccountAssetTransactions(
	accountId string,
	assetId string,
) *Builder {
	b.payload = NewGetAccountAssetTransactions(accountId, assetId)
	return b
}

// GetTransactions selects a query for specific transactions by hash
func (b *Builder) GetTransactions(
	accountId string,
	txHashes []string,
) *Builder {
	b.payload = NewGetTransactions(accountId, txHashes)
	return b
}

// GetSignatories selects an account signatory query
func (b *Builder) GetSignatories(accountId string) *Builder {
	b.payload = NewGetSignatories(accountId)
	return b
}

// GetAssetInfo selects an asset definition query
func (b *Builder) GetAssetInfo(accountId string, assetId string) *Builder {
	b.payload = NewGetAssetInfo(accountId, assetId)
	return b
}

// GetRoles selects a role list query
func (b *Builder) GetRoles(accountId string) *Builder {
	b.payload = NewGetRoles(accountId)
	return b
}

// GetRolePermissions selects a role permission query
func (b *Builder) GetRolePermissions(
	accountId string,
	roleId string,
) *Builder {
	b.payload = NewGetRolePermissions(accountId, roleId)
	return b
}
