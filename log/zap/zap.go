package zap

import (
	"github.com/droidwire/parcelval"
	"go.uber.org/zap"
)

var _ parcelval.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f parcelval.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f parcelval.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f parcelval.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f parcelval.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f parcelval.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
