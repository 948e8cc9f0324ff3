package logging

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the process-wide logger and the zerolog context default.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

func Debug() *zerolog.Event { return Logger.Debug() }

func Ctx(ctx context.Context) *zerolog.Logger { return zerolog.Ctx(ctx) }

// EmbedError adds err to the event, through its own marshalling when any
// error in its chain implements zerolog.LogObjectMarshaler.
func EmbedError(event *zerolog.Event, err error) *zerolog.Event {
	var marshaler zerolog.LogObjectMarshaler
	if errors.As(err, &marshaler) {
		return event.EmbedObject(marshaler)
	}
	return event.Err(err)
}
