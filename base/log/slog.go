package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const timeFormat = "060102 15:04:05.000"

func setupSLog(level Severity, w io.Writer) {
	handlerLogLevel := level.toSLogLevel()

	// Only colorize when writing to a terminal.
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	logHandler := tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	})

	// Set as default logger.
	slog.SetDefault(slog.New(logHandler))
	// Set actual log level.
	slog.SetLogLoggerLevel(handlerLogLevel)
}
