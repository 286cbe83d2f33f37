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
	"errors"
	"fmt"
)

// ValidationError indicates the draft was not in a signable state
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("query validation failed: %s", e.Reason)
}

// Sentinel error for validation failures so callers can use errors.Is
var ErrValidation = errors.New("query validation failed")

func (ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CryptoError indicates the signing primitive rejected the key or failed to
// produce a signature
type CryptoError struct {
	Op  string
	Err error
}

func (e CryptoError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.Op, e.Err)
}

func (e CryptoError) Unwrap() error { return e.Err }

// Sentinel error for signing failures so callers can use errors.Is
var ErrCrypto = errors.New("query signing failed")

func (CryptoError) Is(target error) bool {
	return target == ErrCrypto
}
