package parcelval

import (
	"errors"
	"testing"
)

// sample record: two i32 words.
type pairRecord struct {
	A, B int32
}

func (pairRecord) TypeName() string { return "test.Pair" }

func readPair(r *Reader) (Record, error) {
	a, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	return pairRecord{A: a, B: b}, nil
}

func testDecoder(t *testing.T) *Decoder {
	t.Helper()
	reg := NewRegistry()
	reg.Register("test.Pair", CreatorFunc(readPair))
	return NewDecoder(Options{Registry: reg})
}

func TestLongArrayValue(t *testing.T) {
	var p parcelBuilder
	p.i32(int32(KindLongArray)).i32(2).i64(7).i64(42)

	r := p.reader()
	v, err := testDecoder(t).ReadValue(r)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	longs, ok := v.Longs()
	if !ok || len(longs) != 2 || longs[0] != 7 || longs[1] != 42 {
		t.Fatalf("got %v (ok=%v), want [7 42]", longs, ok)
	}
	if r.Remaining() != 0 {
		t.Fatalf("cursor not at end: %d remaining", r.Remaining())
	}
}

func TestLongArrayBadCounts(t *testing.T) {
	for _, count := range []int32{-1, 3} { // 3 longs declared, none present
		var p parcelBuilder
		p.i32(int32(KindLongArray)).i32(count)

		_, err := testDecoder(t).ReadValue(p.reader())
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("count %d: expected BoundsError, got %v", count, err)
		}
		if be.Kind != KindLongArray || be.Count != count {
			t.Fatalf("count %d: error carries %v/%d", count, be.Kind, be.Count)
		}
	}
}

func TestBooleanArrayValue(t *testing.T) {
	var p parcelBuilder
	// Any non-zero word is true, not just 1.
	p.i32(int32(KindBooleanArray)).i32(3).i32(0).i32(1).i32(-5)

	v, err := testDecoder(t).ReadValue(p.reader())
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	bools, ok := v.Bools()
	if !ok || len(bools) != 3 || bools[0] || !bools[1] || !bools[2] {
		t.Fatalf("got %v (ok=%v), want [false true true]", bools, ok)
	}
}

func TestBooleanArrayOversizedCountIsNull(t *testing.T) {
	for _, count := range []int32{-1, 2, 1 << 30} {
		var p parcelBuilder
		p.i32(int32(KindBooleanArray)).i32(count)
		p.i32(1) // one word available, never enough for the bad counts

		r := p.reader()
		v, err := testDecoder(t).ReadValue(r)
		if err != nil {
			t.Fatalf("count %d: unexpected error %v", count, err)
		}
		if !v.IsNull() {
			t.Fatalf("count %d: got %v, want Null", count, v.Kind())
		}
		// The guard must not have consumed past the count word.
		if r.Position() != 8 {
			t.Fatalf("count %d: cursor at %d, want 8", count, r.Position())
		}
	}
}

func TestRecordArrayValue(t *testing.T) {
	var body parcelBuilder
	body.i32(2)
	body.str("test.Pair").i32(1).i32(2)
	body.str("test.Pair").i32(3).i32(4)
	payload := body.bytes()

	var p parcelBuilder
	p.i32(int32(KindParcelableArray)).i32(int32(len(payload)))
	p.raw(payload)

	r := p.reader()
	v, err := testDecoder(t).ReadValue(r)
	if err != nil {
		t.Fatalf("ReadValue: %v", err)
	}
	records, ok := v.Records()
	if !ok || len(records) != 2 {
		t.Fatalf("got %d records (ok=%v), want 2", len(records), ok)
	}
	// Stream order preserved, concrete type recoverable by assertion.
	first, ok := records[0].(pairRecord)
	if !ok || first != (pairRecord{A: 1, B: 2}) {
		t.Fatalf("first record: %#v", records[0])
	}
	second := records[1].(pairRecord)
	if second != (pairRecord{A: 3, B: 4}) {
		t.Fatalf("second record: %#v", records[1])
	}
	if r.Remaining() != 0 {
		t.Fatalf("cursor not at end: %d remaining", r.Remaining())
	}
}

func TestRecordArrayUnknownName(t *testing.T) {
	var body parcelBuilder
	body.i32(1)
	body.str("test.Missing")
	payload := body.bytes()

	var p parcelBuilder
	p.i32(int32(KindParcelableArray)).i32(int32(len(payload)))
	p.raw(payload)

	_, err := testDecoder(t).ReadValue(p.reader())
	var uce *UnknownCreatorError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnknownCreatorError, got %v", err)
	}
	if uce.Name != "test.Missing" {
		t.Fatalf("error names %q, want test.Missing", uce.Name)
	}
}

func TestRecordArrayBadCounts(t *testing.T) {
	for _, count := range []int32{-2, 100} {
		var p parcelBuilder
		p.i32(int32(KindParcelableArray)).i32(8).i32(count).i32(0)

		_, err := testDecoder(t).ReadValue(p.reader())
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("count %d: expected BoundsError, got %v", count, err)
		}
	}
}

func TestLengthPrefixMismatch(t *testing.T) {
	var body parcelBuilder
	body.i32(1)
	body.str("test.Pair").i32(1).i32(2)
	payload := body.bytes()

	// Declare four bytes more than the payload routine will consume.
	var p parcelBuilder
	p.i32(int32(KindParcelableArray)).i32(int32(len(payload)) + 4)
	p.raw(payload)
	p.i32(0) // the extra word the bogus prefix points into

	_, err := testDecoder(t).ReadValue(p.reader())
	var sme *SizeMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
	if sme.Kind != KindParcelableArray {
		t.Fatalf("error carries kind %v", sme.Kind)
	}
}

func TestUnsupportedKinds(t *testing.T) {
	// One unprefixed and one length-prefixed kind without a payload
	// routine; both must fail by name, neither may guess a layout.
	for _, kind := range []Kind{KindString, KindIntArray, KindMap, KindList} {
		var p parcelBuilder
		p.i32(int32(kind))
		if lengthPrefixed(kind) {
			p.i32(8)
		}
		p.i32(0).i32(0)

		_, err := testDecoder(t).ReadValue(p.reader())
		var uke *UnsupportedKindError
		if !errors.As(err, &uke) {
			t.Fatalf("kind %v: expected UnsupportedKindError, got %v", kind, err)
		}
		if uke.Kind != kind {
			t.Fatalf("error carries kind %v, want %v", uke.Kind, kind)
		}
	}
}

func TestValueTagTruncated(t *testing.T) {
	_, err := testDecoder(t).ReadValue(NewReader(nil))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
