package parcelval

import "unicode/utf8"

// ReadString decodes a string in the transport's native convention: an i32
// byte length, the UTF-8 body, padding to the next word boundary. This is
// the form used for container keys and creator type names; string8 fields
// use ReadString8 instead.
func ReadString(r *Reader) (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", &FramingError{Field: "string length", Value: n}
	}
	body, err := r.readPadded(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(body) {
		return "", ErrInvalidUTF8
	}
	return string(body), nil
}

// ReadValue decodes one tagged value and leaves the cursor just past it,
// nested structure included.
//
// Kinds in the length-prefixed subset carry their own byte length; after
// the payload routine runs the cursor must sit exactly on the declared
// boundary. A mismatch means the stream and this decoder disagree about
// the layout, so the decode fails instead of resyncing.
func (d *Decoder) ReadValue(r *Reader) (Value, error) {
	tag, err := r.ReadInt32()
	if err != nil {
		return Value{}, err
	}
	kind := Kind(tag)
	if !lengthPrefixed(kind) {
		return d.readPayload(r, kind)
	}
	length, err := r.ReadInt32()
	if err != nil {
		return Value{}, err
	}
	start := r.Position()
	v, err := d.readPayload(r, kind)
	if err != nil {
		return Value{}, err
	}
	if end := r.Position(); end != start+int(length) {
		return Value{}, &SizeMismatchError{Kind: kind, Start: start, Length: length, End: end}
	}
	return v, nil
}

func (d *Decoder) readPayload(r *Reader, kind Kind) (Value, error) {
	switch kind {
	case KindParcelableArray:
		return d.readRecordArray(r)
	case KindLongArray:
		return d.readLongArray(r)
	case KindBooleanArray:
		return d.readBoolArray(r)
	default:
		return Value{}, &UnsupportedKindError{Kind: kind}
	}
}

func (d *Decoder) readRecordArray(r *Reader) (Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return Value{}, err
	}
	// Every element starts with at least one word of type name, so more
	// elements than remaining words can not fit.
	if n < 0 || int64(n) > int64(r.Remaining()/4) {
		return Value{}, &BoundsError{Kind: KindParcelableArray, Count: n, Remaining: r.Remaining()}
	}
	records := make([]Record, 0, n)
	for i := int32(0); i < n; i++ {
		name, err := ReadString(r)
		if err != nil {
			return Value{}, err
		}
		creator, err := d.reg.Lookup(name)
		if err != nil {
			d.log.Error("no creator registered", Fields{"name": name})
			return Value{}, err
		}
		rec, err := creator.CreateFromParcel(r)
		if err != nil {
			return Value{}, err
		}
		records = append(records, rec)
	}
	return RecordArray(records), nil
}

func (d *Decoder) readLongArray(r *Reader) (Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return Value{}, err
	}
	if n < 0 || int64(n)*8 > int64(r.Remaining()) {
		return Value{}, &BoundsError{Kind: KindLongArray, Count: n, Remaining: r.Remaining()}
	}
	longs := make([]int64, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := r.ReadInt64()
		if err != nil {
			return Value{}, err
		}
		longs = append(longs, v)
	}
	return LongArray(longs), nil
}

// readBoolArray mirrors the producer's own guard: a count that can not fit
// in the remaining words decodes the whole slot to Null rather than
// failing. Consumers of this format observably rely on that.
func (d *Decoder) readBoolArray(r *Reader) (Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return Value{}, err
	}
	if n < 0 || int64(n) > int64(r.Remaining()/4) {
		d.log.Warn("boolean array count exceeds buffer, decoding as null",
			Fields{"count": n, "remaining": r.Remaining()})
		return Null(), nil
	}
	bools := make([]bool, 0, n)
	for i := int32(0); i < n; i++ {
		w, err := r.ReadInt32()
		if err != nil {
			return Value{}, err
		}
		bools = append(bools, w != 0)
	}
	return BoolArray(bools), nil
}
