package zerolog

import (
	"github.com/droidwire/parcelval"
	"github.com/rs/zerolog"
)

var _ parcelval.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

func (z Logger) Debug(msg string, f parcelval.Fields) {
	z.L.Debug().Fields(map[string]any(f)).Msg(msg)
}
func (z Logger) Info(msg string, f parcelval.Fields) {
	z.L.Info().Fields(map[string]any(f)).Msg(msg)
}
func (z Logger) Warn(msg string, f parcelval.Fields) {
	z.L.Warn().Fields(map[string]any(f)).Msg(msg)
}
func (z Logger) Error(msg string, f parcelval.Fields) {
	z.L.Error().Fields(map[string]any(f)).Msg(msg)
}
