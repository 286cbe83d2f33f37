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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/blinklabs-io/goiroha/cmd/common"
	"github.com/blinklabs-io/goiroha/query"
)

type queryBuildFlags struct {
	*common.GlobalFlags
	queryName string
	account   string
	asset     string
	role      string
	txHashes  string
}

func main() {
	// Parse commandline
	f := queryBuildFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.queryName,
		"query",
		"account",
		"query to build: account, account-assets, account-detail, account-txs, account-asset-txs, txs, signatories, asset-info, roles, role-permissions",
	)
	f.Flagset.StringVar(&f.account, "account", "", "account ID to query")
	f.Flagset.StringVar(&f.asset, "asset", "", "asset ID to query")
	f.Flagset.StringVar(&f.role, "role", "", "role ID to query")
	f.Flagset.StringVar(
		&f.txHashes,
		"tx-hashes",
		"",
		"comma-separated transaction hashes for the txs query",
	)
	f.Parse()
	logger := f.Logger()

	kp := common.CreateKeyPair(f.GlobalFlags)
	logger.Debug(
		"using keypair",
		"public_key", kp.PublicKeyHex(),
		"creator", kp.CreatorId(),
	)

	builderOpts := []query.BuilderOptionFunc{
		query.WithCounter(f.Counter),
	}
	if f.CreatedTime > 0 {
		builderOpts = append(
			builderOpts,
			query.WithCreatedTime(f.CreatedTime),
		)
	}
	builder := query.NewBuilder(kp, builderOpts...)

	switch f.queryName {
	case "account":
		builder.GetAccount(f.account)
	case "account-assets":
		builder.GetAccountAssets(f.account)
	case "account-detail":
		builder.GetAccountDetail(f.account)
	case "account-txs":
		builder.GetAccountTransactions(f.account)
	case "account-asset-txs":
		builder.GetAccountAssetTransactions(f.account, f.asset)
	case "txs":
		var hashes []string
		if f.txHashes != "" {
			hashes = strings.Split(f.txHashes, ",")
		}
		builder.GetTransactions(f.account, hashes)
	case "signatories":
		builder.GetSignatories(f.account)
	case "asset-info":
		builder.GetAssetInfo(f.account, f.asset)
	case "roles":
		builder.GetRoles(f.account)
	case "role-permissions":
		builder.GetRolePermissions(f.account, f.role)
	default:
		fmt.Printf("unknown query: %s\n\n", f.queryName)
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}

	signed, err := builder.Sign()
	if err != nil {
		logger.Error("failed to sign query", "error", err)
		os.Exit(1)
	}
	if err := signed.Verify(); err != nil {
		logger.Error("signed query failed self-verification", "error", err)
		os.Exit(1)
	}

	wireCbor, err := signed.MarshalCBOR()
	if err != nil {
		logger.Error("failed to encode signed query", "error", err)
		os.Exit(1)
	}

	sig := signed.Signature()
	fmt.Printf("creator      = %s\n", signed.Creator())
	fmt.Printf("counter      = %d\n", signed.Counter())
	fmt.Printf("created_time = %d\n", signed.CreatedTime())
	fmt.Printf("query_type   = %d\n", signed.Payload().Type())
	fmt.Printf("public_key   = %s\n", hex.EncodeToString(sig.PublicKey))
	fmt.Printf("signature    = %s\n", hex.EncodeToString(sig.Signature))
	fmt.Printf("cbor         = %s\n", hex.EncodeToString(wireCbor))
}
