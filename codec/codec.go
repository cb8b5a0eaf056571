// Package codec serializes exported decode results (typically the
// map[string]any form of a parcelval.Bundle) to bytes, for callers that
// snapshot, cache, or forward what they decoded.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
