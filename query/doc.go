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

// Package query implements construction and signing of read-only ledger
// queries.
//
// A Builder is bound to a keypair at construction, stamps the query with a
// counter and creation time for replay disambiguation, and exposes one
// chaining selector per query type. Sign produces an immutable SignedQuery
// whose ed25519 signature covers the blake2b-256 digest of the canonical
// CBOR encoding of the draft, so repeated signing of an unmodified draft
// yields byte-identical signatures.
//
// Basic usage:
//
//	kp, _ := keypair.Generate()
//	signed, err := query.NewBuilder(kp, query.WithCounter(5)).
//		GetAccountAssets("bob@domain").
//		Sign()
package query
