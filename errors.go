package parcelval

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports a read past the end of the parcel buffer.
	ErrTruncated = errors.New("parcelval: read past end of buffer")

	// ErrMissingTerminator reports a string8 whose byte at the declared
	// length is not NUL. The framing is off; nothing after it can be
	// trusted.
	ErrMissingTerminator = errors.New("parcelval: string8 missing NUL terminator")

	// ErrInvalidUTF8 reports a string field that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("parcelval: string is not valid UTF-8")
)

// FramingError reports a structural field that violates the container
// contract: a presence flag other than 1, a negative length, a negative
// entry count, a negative string length.
type FramingError struct {
	Field string
	Value int32
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("parcelval: bad %s %d", e.Field, e.Value)
}

// SizeMismatchError reports a length-prefixed value whose payload decode
// did not land exactly on the declared boundary. Either the stream or the
// payload routine is wrong about the layout; the whole decode aborts.
type SizeMismatchError struct {
	Kind   Kind
	Start  int
	Length int32
	End    int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("parcelval: %v payload ended at %d, declared end %d",
		e.Kind, e.End, e.Start+int(e.Length))
}

// BoundsError reports an element count that implies more data than the
// buffer holds. Raised before any allocation happens.
type BoundsError struct {
	Kind      Kind
	Count     int32
	Remaining int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("parcelval: %v count %d exceeds %d remaining bytes",
		e.Kind, e.Count, e.Remaining)
}

// UnsupportedKindError reports a tag the protocol defines but this package
// has no payload routine for. Distinct from corruption: the stream may be
// well formed, this decoder just can not interpret it.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("parcelval: unsupported value kind %v", e.Kind)
}

// UnknownCreatorError reports a polymorphic record type name with no
// registered creator.
type UnknownCreatorError struct {
	Name string
}

func (e *UnknownCreatorError) Error() string {
	return fmt.Sprintf("parcelval: no creator registered for %q", e.Name)
}
