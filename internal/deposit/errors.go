package deposit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBatch is returned when the deposit file holds no records
	ErrEmptyBatch = errors.New("deposit batch is empty")

	// ErrStaleLoad is returned by the loader when a newer file was loaded
	// before the current one finished validating
	ErrStaleLoad = errors.New("deposit load superseded by a newer file")
)

// MalformedHexError is returned when a field is not a valid hex string
type MalformedHexError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedHexError) Error() string {
	return fmt.Sprintf("malformed hex in '%s': %v", e.Field, e.Err)
}

func (e *MalformedHexError) Unwrap() error {
	return e.Err
}

// InvalidFieldLengthError is returned when a decoded field does not have
// its fixed ssz size
type InvalidFieldLengthError struct {
	Field string
	Got   int
	Want  int
}

func (e *InvalidFieldLengthError) Error() string {
	return fmt.Sprintf("invalid length for '%s': got %d bytes, expected %d", e.Field, e.Got, e.Want)
}

// RootMismatchError is returned when the declared root of a record does not
// match the one computed from its fields
type RootMismatchError struct {
	Field    string
	Declared [32]byte
	Computed [32]byte
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("'%s' mismatch: declared %s, computed %s", e.Field, EncodeHex(e.Declared[:]), EncodeHex(e.Computed[:]))
}

// SchemaError is returned when the deposit file does not have the expected
// json shape
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid deposit file: %s", e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid record %d: field '%s' %s", e.Index, e.Field, e.Reason)
}

// AmountError is returned when non canonical amounts are not allowed and a
// record declares a different one
type AmountError struct {
	Got  uint64
	Want uint64
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("non canonical amount %d gwei, expected %d gwei", e.Got, e.Want)
}

// SignatureError is returned when the bls signature of a deposit does not verify
type SignatureError struct {
	Reason string
}

func (e *SignatureError) Error() string {
	return "invalid deposit signature: " + e.Reason
}

// RecordError ties a validation failure to the record that caused it
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsValidationError returns true if err is caused by the content of the
// deposit file rather than by the environment
func IsValidationError(err error) bool {
	var (
		hexErr      *MalformedHexError
		lenErr      *InvalidFieldLengthError
		mismatchErr *RootMismatchError
		schemaErr   *SchemaError
		amountErr   *AmountError
		sigErr      *SignatureError
	)
	switch {
	case errors.Is(err, ErrEmptyBatch):
	case errors.As(err, &hexErr):
	case errors.As(err, &lenErr):
	case errors.As(err, &mismatchErr):
	case errors.As(err, &schemaErr):
	case errors.As(err, &amountErr):
	case errors.As(err, &sigErr):
	default:
		return false
	}
	return true
}
