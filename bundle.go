package parcelval

// Known container magic markers, written after the length field by the two
// producer flavors. The decoder reads the marker but does not reject
// unknown ones; the record kinds handled here lay out the same way under
// either producer.
const (
	MagicJava   int32 = 0x4C444E42 // 'BNDL'
	MagicNative int32 = 0x4C444E44 // 'BNDN'
)

// Bundle is a decoded container: string keys mapped to dynamically tagged
// values. Wire order is not preserved; treat it as a set of pairs.
type Bundle map[string]Value

// Options configure a Decoder. The zero value works: the process-wide
// default registry and no logging.
type Options struct {
	Registry *Registry // nil => DefaultRegistry()
	Logger   Logger    // nil => NopLogger
}

// Decoder decodes values and bundles against one creator registry.
// Decoders are cheap and safe for concurrent use over independent readers.
type Decoder struct {
	reg *Registry
	log Logger
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{
		reg: coalesce(opts.Registry, DefaultRegistry()),
		log: coalesce[Logger](opts.Logger, NopLogger{}),
	}
}

// ReadBundle decodes one container. The cursor must sit on the presence
// flag the producer writes ahead of the container body.
//
// A zero total length is an explicitly empty container; decoding stops
// there and any bytes after it are left for the caller. The first error of
// any entry aborts the whole decode: a failed container is untrustworthy
// as a whole, not partially usable.
func (d *Decoder) ReadBundle(r *Reader) (Bundle, error) {
	present, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if present != 1 {
		return nil, &FramingError{Field: "presence flag", Value: present}
	}
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, &FramingError{Field: "bundle length", Value: length}
	}
	if length == 0 {
		return Bundle{}, nil
	}
	magic, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &FramingError{Field: "entry count", Value: count}
	}
	d.log.Debug("decoding bundle", Fields{"magic": magic, "entries": count, "length": length})

	b := make(Bundle, count)
	for i := int32(0); i < count; i++ {
		key, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		v, err := d.ReadValue(r)
		if err != nil {
			return nil, err
		}
		// Duplicate keys are legal on the wire; the last one wins.
		b[key] = v
	}
	return b, nil
}

// std serves the package-level helpers, bound to the default registry.
var std = NewDecoder(Options{})

// ReadBundle decodes one container using the default registry.
func ReadBundle(r *Reader) (Bundle, error) { return std.ReadBundle(r) }

// ReadValue decodes one tagged value using the default registry.
func ReadValue(r *Reader) (Value, error) { return std.ReadValue(r) }
