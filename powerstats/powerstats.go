// Package powerstats decodes the record types and reply containers of the
// platform power-stats service. The transport shim hands the raw reply
// buffer to parcelval; this package knows which keys the service writes
// and what its monitor records look like on the wire.
package powerstats

import (
	"fmt"
	"sync"

	"github.com/droidwire/parcelval"
)

// Reply bundle keys written by the service.
const (
	KeyMonitors    = "monitors"
	KeyTimestamps  = "timestamps"
	KeyEnergy      = "energy"
	KeyGranularity = "granularity"
)

// PowerMonitorTypeName is the wire name PowerMonitor records travel under.
const PowerMonitorTypeName = "android.os.PowerMonitor"

// MonitorType distinguishes modeled consumers from directly measured
// power rails.
type MonitorType int32

const (
	// Consumer aggregates one or more rails (possibly shared or
	// partial) into a subsystem-level figure.
	Consumer MonitorType = 0
	// Measurement is a direct pass-through of one device-specific rail.
	Measurement MonitorType = 1
)

func (t MonitorType) String() string {
	switch t {
	case Consumer:
		return "consumer"
	case Measurement:
		return "measurement"
	}
	return fmt.Sprintf("MonitorType(%d)", int32(t))
}

// PowerMonitor is the service's monitor descriptor record: an i32 index,
// an i32 type, and a string8 name.
type PowerMonitor struct {
	Index int32
	Type  MonitorType
	Name  string
}

func (PowerMonitor) TypeName() string { return PowerMonitorTypeName }

// Interface exports the monitor for bundle flattening.
func (m PowerMonitor) Interface() any {
	return map[string]any{
		"index": m.Index,
		"type":  m.Type.String(),
		"name":  m.Name,
	}
}

func readPowerMonitor(r *parcelval.Reader) (parcelval.Record, error) {
	index, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	typ, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	switch MonitorType(typ) {
	case Consumer, Measurement:
	default:
		return nil, fmt.Errorf("powerstats: unknown monitor type %d", typ)
	}
	name, err := parcelval.ReadString8(r)
	if err != nil {
		return nil, err
	}
	return PowerMonitor{Index: index, Type: MonitorType(typ), Name: name}, nil
}

var registerOnce sync.Once

// Register installs this package's record creators in the default
// registry. Safe to call repeatedly; only the first call does anything.
// Callers using an isolated registry can register the same creator via
// RegisterInto.
func Register() {
	registerOnce.Do(func() {
		parcelval.Register(PowerMonitorTypeName, parcelval.CreatorFunc(readPowerMonitor))
	})
}

// RegisterInto installs the creators in reg instead of the default
// registry.
func RegisterInto(reg *parcelval.Registry) {
	reg.Register(PowerMonitorTypeName, parcelval.CreatorFunc(readPowerMonitor))
}

// Monitors extracts the supported-monitor list from a reply bundle.
func Monitors(b parcelval.Bundle) ([]PowerMonitor, error) {
	v, ok := b[KeyMonitors]
	if !ok {
		return nil, fmt.Errorf("powerstats: bundle has no %q entry", KeyMonitors)
	}
	records, ok := v.Records()
	if !ok {
		return nil, fmt.Errorf("powerstats: %q is %v, want a record array", KeyMonitors, v.Kind())
	}
	out := make([]PowerMonitor, 0, len(records))
	for _, rec := range records {
		m, ok := rec.(PowerMonitor)
		if !ok {
			return nil, fmt.Errorf("powerstats: unexpected record type %q under %q",
				rec.TypeName(), KeyMonitors)
		}
		out = append(out, m)
	}
	return out, nil
}

// Reading is one timestamped accumulated-energy sample in microwatt
// seconds.
type Reading struct {
	TimestampMs int64
	EnergyUWs   int64
}

// Readings zips the timestamp and energy arrays of a reply bundle. The
// service writes the two arrays index-aligned; a length mismatch means the
// reply is unusable.
func Readings(b parcelval.Bundle) ([]Reading, error) {
	ts, err := longs(b, KeyTimestamps)
	if err != nil {
		return nil, err
	}
	es, err := longs(b, KeyEnergy)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(es) {
		return nil, fmt.Errorf("powerstats: %d timestamps for %d energy samples", len(ts), len(es))
	}
	out := make([]Reading, len(ts))
	for i := range ts {
		out[i] = Reading{TimestampMs: ts[i], EnergyUWs: es[i]}
	}
	return out, nil
}

func longs(b parcelval.Bundle, key string) ([]int64, error) {
	v, ok := b[key]
	if !ok {
		return nil, fmt.Errorf("powerstats: bundle has no %q entry", key)
	}
	ls, ok := v.Longs()
	if !ok {
		return nil, fmt.Errorf("powerstats: %q is %v, want a long array", key, v.Kind())
	}
	return ls, nil
}
