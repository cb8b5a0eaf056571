package parcelval

import "unicode/utf8"

// ReadString8 decodes a length-prefixed, NUL-terminated 8-bit string.
//
// The u32 length excludes the terminator. The body is consumed as whole
// words, 4*ceil((len+1)/4) bytes, so the cursor stays word-aligned for
// every read that follows; the rest of the format depends on that. The
// byte at offset len must be NUL. Anything else means the framing is off
// and the stream is reported as malformed rather than truncated quietly.
func ReadString8(r *Reader) (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	body, err := r.readPadded(int(n) + 1) // text plus mandatory NUL
	if err != nil {
		return "", err
	}
	if body[n] != 0 {
		return "", ErrMissingTerminator
	}
	if !utf8.Valid(body[:n]) {
		return "", ErrInvalidUTF8
	}
	return string(body[:n]), nil
}
