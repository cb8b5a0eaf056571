package parcelval

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// exporter is implemented by records that want control over how they
// flatten to plain Go data. Records without it pass through as-is.
type exporter interface {
	Interface() any
}

// Interface flattens the value to plain Go data: nil, []bool, []int64, or
// []any for record arrays.
func (v Value) Interface() any {
	switch v.kind {
	case KindBooleanArray:
		return v.bools
	case KindLongArray:
		return v.longs
	case KindParcelableArray:
		out := make([]any, len(v.records))
		for i, rec := range v.records {
			if e, ok := rec.(exporter); ok {
				out[i] = e.Interface()
			} else {
				out[i] = rec
			}
		}
		return out
	default:
		return nil
	}
}

// Interface flattens the bundle to a plain map, suitable for a codec or
// for structured logging.
func (b Bundle) Interface() map[string]any {
	out := make(map[string]any, len(b))
	for k, v := range b {
		out[k] = v.Interface()
	}
	return out
}

// ToStruct converts a decoded bundle to a protobuf Struct for callers that
// forward results over protobuf transports. Longs travel as Struct
// numbers; values beyond float64's integer range lose precision, which is
// inherent to the Struct type.
func ToStruct(b Bundle) (*structpb.Struct, error) {
	fields := make(map[string]*structpb.Value, len(b))
	for k, v := range b {
		pv, err := valueToProto(v)
		if err != nil {
			return nil, fmt.Errorf("parcelval: field %q: %w", k, err)
		}
		fields[k] = pv
	}
	return &structpb.Struct{Fields: fields}, nil
}

func valueToProto(v Value) (*structpb.Value, error) {
	switch v.kind {
	case KindNull:
		return structpb.NewNullValue(), nil
	case KindBooleanArray:
		vals := make([]*structpb.Value, len(v.bools))
		for i, b := range v.bools {
			vals[i] = structpb.NewBoolValue(b)
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil
	case KindLongArray:
		vals := make([]*structpb.Value, len(v.longs))
		for i, n := range v.longs {
			vals[i] = structpb.NewNumberValue(float64(n))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil
	case KindParcelableArray:
		vals := make([]*structpb.Value, len(v.records))
		for i, rec := range v.records {
			exported := any(rec)
			if e, ok := rec.(exporter); ok {
				exported = e.Interface()
			}
			pv, err := structpb.NewValue(exported)
			if err != nil {
				return nil, fmt.Errorf("record %q: %w", rec.TypeName(), err)
			}
			vals[i] = pv
		}
		return structpb.NewListValue(&structpb.ListValue{Values: vals}), nil
	default:
		return nil, &UnsupportedKindError{Kind: v.kind}
	}
}
