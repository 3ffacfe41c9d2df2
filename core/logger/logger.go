package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init switches to pretty console output for local development.
func Init(development bool) {
	if development {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
}

func Debug(msg string, kv ...any) { emit(log.Debug(), msg, kv) }
func Info(msg string, kv ...any)  { emit(log.Info(), msg, kv) }
func Warn(msg string, kv ...any)  { emit(log.Warn(), msg, kv) }
func Error(msg string, kv ...any) { emit(log.Error(), msg, kv) }

func Fatal(msg string, kv ...any) {
	emit(log.Fatal(), msg, kv)
}

// emit attaches key/value pairs to the event. A bare error value (the common
// logger.Error("Repo:Method", err) call shape) is logged under "error".
func emit(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i < len(kv); {
		if err, ok := kv[i].(error); ok {
			e = e.AnErr("error", err)
			i++
			continue
		}
		key, ok := kv[i].(string)
		if !ok || i+1 >= len(kv) {
			e = e.Interface("extra", kv[i])
			i++
			continue
		}
		e = e.Interface(key, kv[i+1])
		i += 2
	}
	e.Msg(msg)
}
