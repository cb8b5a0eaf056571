package logrus

import (
	"github.com/droidwire/parcelval"
	"github.com/sirupsen/logrus"
)

var _ parcelval.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f parcelval.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f parcelval.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f parcelval.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f parcelval.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
