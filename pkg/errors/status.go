// Copyright 2026 The Polkaswap Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// Status is an operation status code.
type Status uint64

const (
	// OK means the operation succeeded.
	OK Status = 200

	// BadRequest means the request was invalid.
	BadRequest Status = 400
	// NotFound means a requested record was not found.
	NotFound Status = 404
	// Conflict means the request conflicts with the current state.
	Conflict Status = 409

	// AmountZero means a transfer of exactly zero was requested.
	AmountZero Status = 460
	// BalanceLow means a debit would make a balance negative.
	BalanceLow Status = 461
	// BalanceZero means the account holds none of the asset.
	//
	// Declared for completeness; no transition currently returns it.
	BalanceZero Status = 462
	// AllowanceLow means a delegated transfer exceeds the granted allowance.
	AllowanceLow Status = 463
	// AssetNotExists means the asset ID was never issued.
	AssetNotExists Status = 464

	// InternalError means an internal error occurred.
	InternalError Status = 500
	// UnknownError means an unknown error occurred.
	UnknownError Status = 501
	// EncodingError means encoding or decoding failed.
	EncodingError Status = 502
	// NotReady means the receiver is not ready, e.g. a closed database.
	NotReady Status = 503
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "bad request"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	case AmountZero:
		return "amount is zero"
	case BalanceLow:
		return "balance is too low"
	case BalanceZero:
		return "balance is zero"
	case AllowanceLow:
		return "allowance is too low"
	case AssetNotExists:
		return "asset does not exist"
	case InternalError:
		return "internal error"
	case UnknownError:
		return "unknown error"
	case EncodingError:
		return "encoding error"
	case NotReady:
		return "not ready"
	default:
		return "unknown status"
	}
}

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }
