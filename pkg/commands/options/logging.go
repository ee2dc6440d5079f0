package options

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// LoggingOptions
type LoggingOptions struct {
	Level string
}

func AddLoggingArgs(cmd *cobra.Command, o *LoggingOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "warn",
		"Log level. One of 'debug', 'info', 'warn' or 'error'.")
}

// Logger builds a text logger writing to w at the configured level.
func (o *LoggingOptions) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", o.Level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
