// Where: ec2-starter/internal/logging/logging.go
// What: slog logger construction.
// Why: Emit line-oriented logs the Lambda log sink and CloudWatch can parse.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/envutil"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type Options struct {
	Format Format
	Level  slog.Level
}

// OptionsFromEnv honours the Lambda advanced logging controls
// (AWS_LAMBDA_LOG_FORMAT, AWS_LAMBDA_LOG_LEVEL). JSON at INFO is the default.
func OptionsFromEnv(env envutil.Lookup) Options {
	return Options{
		Format: ParseFormat(envutil.Value(env, constants.EnvLambdaLogFormat)),
		Level:  ParseLevel(envutil.Value(env, constants.EnvLambdaLogLevel)),
	}
}

func ParseFormat(value string) Format {
	if strings.EqualFold(strings.TrimSpace(value), string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}

// ParseLevel maps Lambda level names to slog levels. TRACE folds into DEBUG
// and FATAL into ERROR.
func ParseLevel(value string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "TRACE", "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR", "FATAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to out. A nil writer falls back to stdout.
func New(out io.Writer, opts Options) *slog.Logger {
	if out == nil {
		out = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}
	if opts.Format == FormatText {
		return slog.New(slog.NewTextHandler(out, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(out, handlerOpts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
