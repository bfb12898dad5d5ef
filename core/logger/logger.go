package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

type Config struct {
	Level  string
	Pretty bool
	Output io.Writer
}

// Configure replaces the package logger. Safe to call once at startup.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}
	log = zerolog.New(writer).With().Timestamp().Logger()
}

func Debug(msg string, kv ...any) {
	write(log.Debug(), msg, kv)
}

func Info(msg string, kv ...any) {
	write(log.Info(), msg, kv)
}

func Warn(msg string, kv ...any) {
	write(log.Warn(), msg, kv)
}

func Error(msg string, kv ...any) {
	write(log.Error(), msg, kv)
}

func Fatal(msg string, kv ...any) {
	write(log.Fatal(), msg, kv)
}

// write accepts either key/value pairs or a trailing lone value, which is
// logged under "error" when it is one and "detail" otherwise.
func write(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i < len(kv); i += 2 {
		if i+1 >= len(kv) {
			if err, ok := kv[i].(error); ok {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("detail", kv[i])
			}
			break
		}
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		if err, ok := kv[i+1].(error); ok {
			ev = ev.AnErr(key, err)
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
