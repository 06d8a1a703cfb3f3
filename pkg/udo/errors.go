package udo

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is matched by every DecodeError.
	ErrDecode = errors.New("udo: decode failed")

	// ErrEncode is matched by every EncodeError.
	ErrEncode = errors.New("udo: encode failed")
)

// DecodeError reports text that is not a valid mapping for a codec.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("udo: decode %s: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// EncodeError reports a mapping that a codec cannot represent. It signals a
// broken invariant (such as a non-UTF-8 value) rather than an environmental
// condition.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("udo: encode %s: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}
