// Package logging configures the process-wide apex/log handler.
package logging

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	"github.com/gabe/ecopatrol/internal/config"
)

// Setup installs a handler for cfg.Format writing to w at cfg.Level
func Setup(cfg config.LoggingConfig, w io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	handler, err := newHandler(cfg.Format, w)
	if err != nil {
		return err
	}

	log.SetHandler(handler)
	log.SetLevel(level)
	return nil
}

func newHandler(format string, w io.Writer) (log.Handler, error) {
	switch format {
	case "", "cli":
		return cli.New(w), nil
	case "json":
		return json.New(w), nil
	case "text":
		return text.New(w), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
