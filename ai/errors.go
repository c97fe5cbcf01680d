// Copyright 2025 Francis Fiscal
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


package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaxAttempts is returned when a retry policy is configured
	// with maxAttempts <= 0.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
)

// ErrorKind classifies provider failures for retry decisions.
type ErrorKind int

const (
	// KindUnknown is an unclassified provider failure. Treated as transient.
	KindUnknown ErrorKind = iota
	// KindRateLimited indicates the provider rejected the call due to quota.
	KindRateLimited
	// KindTimeout indicates the request exceeded its deadline.
	KindTimeout
	// KindAuth indicates an authentication or authorization failure.
	// Never retried: the outcome cannot change without operator action.
	KindAuth
)

// String returns a short name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Retryable reports whether a failure of this kind may succeed on retry.
func (k ErrorKind) Retryable() bool {
	return k != KindAuth
}

// ProviderError is returned when the embedding provider fails after the
// retry policy is exhausted. Callers must degrade gracefully: proceed
// without retrieved context rather than fail the whole chat turn.
type ProviderError struct {
	Kind     ErrorKind
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider failed (%s) after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
