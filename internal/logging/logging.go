package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/xbtasvs/polkaswap-pallet-erc20/pkg/errors"
)

// Logger is a minimal structured logger.
type Logger interface {
	Debug(msg string, keyVals ...interface{})
	Info(msg string, keyVals ...interface{})
	Error(msg string, keyVals ...interface{})
	With(keyVals ...interface{}) Logger
}

type zeroLogger struct {
	l zerolog.Logger
}

// New returns a Logger that writes JSON records to the writer.
func New(w io.Writer, level string) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("parse log level: %w", err)
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return zeroLogger{l}, nil
}

// NewConsole returns a Logger that writes human-readable records to stderr.
func NewConsole(level string) (Logger, error) {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, level)
}

func (z zeroLogger) Debug(msg string, keyVals ...interface{}) {
	z.l.Debug().Fields(keyVals).Msg(msg)
}

func (z zeroLogger) Info(msg string, keyVals ...interface{}) {
	z.l.Info().Fields(keyVals).Msg(msg)
}

func (z zeroLogger) Error(msg string, keyVals ...interface{}) {
	z.l.Error().Fields(keyVals).Msg(msg)
}

func (z zeroLogger) With(keyVals ...interface{}) Logger {
	return zeroLogger{z.l.With().Fields(keyVals).Logger()}
}
