package log

import (
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// RouteWarningsToZerolog sends every errors.Warn call to zl at warn level.
// Warnings that implement zerolog.LogObjectMarshaler are embedded as
// structured fields.
func RouteWarningsToZerolog(zl zerolog.Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		ev := zl.Warn()
		var m zerolog.LogObjectMarshaler
		if errors.As(w, &m) {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(w.Error())
	})
}
