package codec

import "fmt"

// LimitCodec wraps another codec and rejects oversized payloads at Decode
// time before the inner codec runs. Encode is forwarded unchanged. With
// MaxDecode <= 0, limiting is disabled.
//
// Typical use: reading snapshots back from a shared store where the bytes
// may not be the ones this process wrote.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner interface {
		Encode(V) ([]byte, error)
		Decode([]byte) (V, error)
	}
	// MaxDecode is the maximum permitted payload length in bytes for
	// Decode.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
