// Package parcelval decodes the self-describing value/container wire
// format carried over the platform's inter-process transport: word-aligned
// little-endian streams of tagged dynamic values and string-keyed
// containers ("bundles").
//
// Components:
//   - Reader: positioned, bounds-checked cursor over one received buffer.
//   - Value: closed tagged union of the decoded value kinds.
//   - Registry: name -> Creator table for polymorphic records whose
//     concrete type is named inline in the stream.
//   - Decoder: ties a Registry and a Logger to the decode routines
//     (ReadValue, ReadBundle).
//
// Decoding is strict. Length-prefixed values must land exactly on their
// declared boundary, strings must carry their terminator, and element
// counts are checked against the remaining buffer before anything is
// allocated. Malformed or adversarial input surfaces as an error value,
// never a panic, and the first error aborts the whole decode.
//
// Typical use from a transport shim:
//
//	r := parcelval.NewReader(replyBytes)
//	b, err := parcelval.ReadBundle(r)
//
// Record types register a Creator once, usually at init time:
//
//	parcelval.Register("android.os.PowerMonitor", creator)
package parcelval
