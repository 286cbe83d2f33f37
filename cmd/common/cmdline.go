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

package common

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/goiroha/keypair"
)

type GlobalFlags struct {
	Flagset     *flag.FlagSet
	Seed        string
	Counter     uint64
	CreatedTime uint64
	Debug       bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Seed,
		"seed",
		"",
		"hex-encoded ed25519 seed or private key (generates a fresh keypair when empty)",
	)
	f.Flagset.Uint64Var(
		&f.Counter,
		"counter",
		1,
		"query counter for replay disambiguation",
	)
	f.Flagset.Uint64Var(
		&f.CreatedTime,
		"created-time",
		0,
		"creation time in milliseconds since epoch (defaults to now)",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// Logger creates a slog logger honoring the -debug flag
func (f *GlobalFlags) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// CreateKeyPair loads the keypair named by the -seed flag, or generates a
// fresh one when the flag is empty
func CreateKeyPair(f *GlobalFlags) *keypair.KeyPair {
	if f.Seed == "" {
		kp, err := keypair.Generate()
		if err != nil {
			fmt.Printf("failed to generate keypair: %s\n", err)
			os.Exit(1)
		}
		return kp
	}
	kp, err := keypair.FromHex(f.Seed)
	if err != nil {
		fmt.Printf("failed to load keypair: %s\n", err)
		os.Exit(1)
	}
	return kp
}
