// Package apperr defines the error taxonomy shared by services and
// controllers: NotFound, Conflict, Validation, PriceUnresolvable, Storage.
//
// Services return *Error values; controllers map the Kind to an HTTP status
// without ever leaking driver-level detail to the client. Storage errors
// wrap the underlying cause so logs keep the full chain.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
	KindPriceUnresolvable
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindPriceUnresolvable:
		return "price_unresolvable"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports an unknown entity identity.
func NotFound(entity string, id uint) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s %d not found", entity, id)}
}

// NotFoundMsg reports a missing entity with a free-form message.
func NotFoundMsg(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict reports a duplicate or a delete blocked by referencing records.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Validation reports malformed input that slipped past transport checks.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// PriceUnresolvable reports that no price could be determined for an order.
// cause carries the resolver's sentinel (no tiers for the type, no tier
// covering the weight) so callers can still distinguish via errors.Is.
func PriceUnresolvable(msg string, cause error) *Error {
	return &Error{Kind: KindPriceUnresolvable, Msg: msg, Err: cause}
}

// Storage wraps a backend failure.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: "storage failure", Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not an apperr.Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// IsKind reports whether err is an apperr.Error of the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

func IsNotFound(err error) bool          { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool          { return IsKind(err, KindConflict) }
func IsValidation(err error) bool        { return IsKind(err, KindValidation) }
func IsPriceUnresolvable(err error) bool { return IsKind(err, KindPriceUnresolvable) }
func IsStorage(err error) bool           { return IsKind(err, KindStorage) }
