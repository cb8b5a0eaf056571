package parcelval

import "fmt"

// Kind identifies the wire encoding of one value slot. The numbering is
// the transport's native tag table; only a few kinds have a payload
// routine in this package, but the whole table is carried so an
// unsupported tag is reported by name instead of a bare number.
type Kind int32

const (
	KindNull              Kind = -1
	KindString            Kind = 0
	KindInteger           Kind = 1
	KindMap               Kind = 2 // length-prefixed
	KindBundle            Kind = 3
	KindParcelable        Kind = 4 // length-prefixed
	KindShort             Kind = 5
	KindLong              Kind = 6
	KindFloat             Kind = 7
	KindDouble            Kind = 8
	KindBoolean           Kind = 9
	KindCharSequence      Kind = 10
	KindList              Kind = 11 // length-prefixed
	KindSparseArray       Kind = 12 // length-prefixed
	KindByteArray         Kind = 13
	KindStringArray       Kind = 14
	KindIBinder           Kind = 15
	KindParcelableArray   Kind = 16 // length-prefixed
	KindObjectArray       Kind = 17 // length-prefixed
	KindIntArray          Kind = 18
	KindLongArray         Kind = 19
	KindByte              Kind = 20
	KindSerializable      Kind = 21 // length-prefixed
	KindSparseBoolArray   Kind = 22
	KindBooleanArray      Kind = 23
	KindCharSequenceArray Kind = 24
	KindPersistableBundle Kind = 25
	KindSize              Kind = 26
	KindSizeF             Kind = 27
	KindDoubleArray       Kind = 28
	KindChar              Kind = 29
	KindShortArray        Kind = 30
	KindCharArray         Kind = 31
	KindFloatArray        Kind = 32
)

var kindNames = map[Kind]string{
	KindNull:              "Null",
	KindString:            "String",
	KindInteger:           "Integer",
	KindMap:               "Map",
	KindBundle:            "Bundle",
	KindParcelable:        "Parcelable",
	KindShort:             "Short",
	KindLong:              "Long",
	KindFloat:             "Float",
	KindDouble:            "Double",
	KindBoolean:           "Boolean",
	KindCharSequence:      "CharSequence",
	KindList:              "List",
	KindSparseArray:       "SparseArray",
	KindByteArray:         "ByteArray",
	KindStringArray:       "StringArray",
	KindIBinder:           "IBinder",
	KindParcelableArray:   "ParcelableArray",
	KindObjectArray:       "ObjectArray",
	KindIntArray:          "IntArray",
	KindLongArray:         "LongArray",
	KindByte:              "Byte",
	KindSerializable:      "Serializable",
	KindSparseBoolArray:   "SparseBoolArray",
	KindBooleanArray:      "BooleanArray",
	KindCharSequenceArray: "CharSequenceArray",
	KindPersistableBundle: "PersistableBundle",
	KindSize:              "Size",
	KindSizeF:             "SizeF",
	KindDoubleArray:       "DoubleArray",
	KindChar:              "Char",
	KindShortArray:        "ShortArray",
	KindCharArray:         "CharArray",
	KindFloatArray:        "FloatArray",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// lengthPrefixed reports whether values of this kind carry their own byte
// length on the wire. Caller-defined types and containers of them are
// prefixed so a consumer that can not decode them can still skip them;
// fixed-layout primitives are not.
func lengthPrefixed(k Kind) bool {
	switch k {
	case KindMap, KindParcelable, KindList, KindSparseArray,
		KindParcelableArray, KindObjectArray, KindSerializable:
		return true
	}
	return false
}

// Record is one decoded polymorphic payload. Concrete types are resolved
// at decode time through the creator registry and recovered by the caller
// with a type assertion on the Record value.
type Record interface {
	// TypeName returns the wire name the concrete type is registered
	// under.
	TypeName() string
}

// Value is one decoded wire value: a closed union over the kinds this
// package decodes. Take it apart with Kind and the comma-ok accessors.
// The zero Value is not a decoded value; the null value is Null().
type Value struct {
	kind    Kind
	bools   []bool
	longs   []int64
	records []Record
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// BoolArray wraps v as a boolean-array value.
func BoolArray(v []bool) Value { return Value{kind: KindBooleanArray, bools: v} }

// LongArray wraps v as an int64-array value.
func LongArray(v []int64) Value { return Value{kind: KindLongArray, longs: v} }

// RecordArray wraps v as a polymorphic-record-array value.
func RecordArray(v []Record) Value { return Value{kind: KindParcelableArray, records: v} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bools returns the boolean-array payload, if that is what v holds.
func (v Value) Bools() ([]bool, bool) { return v.bools, v.kind == KindBooleanArray }

// Longs returns the int64-array payload, if that is what v holds.
func (v Value) Longs() ([]int64, bool) { return v.longs, v.kind == KindLongArray }

// Records returns the record-array payload, if that is what v holds.
func (v Value) Records() ([]Record, bool) { return v.records, v.kind == KindParcelableArray }
