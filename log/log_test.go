package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onaio/onadata/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		"error":      {input: "error", want: slog.LevelError},
		"warn":       {input: "warn", want: slog.LevelWarn},
		"warning":    {input: "warning", want: slog.LevelWarn},
		"info":       {input: "info", want: slog.LevelInfo},
		"debug":      {input: "debug", want: slog.LevelDebug},
		"mixed case": {input: "INFO", want: slog.LevelInfo},
		"unknown":    {input: "trace", wantErr: true},
		"empty":      {input: "", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    log.Format
		wantErr bool
	}{
		"json":       {input: "json", want: log.FormatJSON},
		"logfmt":     {input: "logfmt", want: log.FormatLogfmt},
		"text":       {input: "text", want: log.FormatText},
		"mixed case": {input: "JSON", want: log.FormatJSON},
		"unknown":    {input: "xml", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler, err := log.NewHandlerFromStrings(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Info("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"key":"value"`)

	// Debug is below the configured level.
	buf.Reset()
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewHandlerFromStringsInvalid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := log.NewHandlerFromStrings(&buf, "nope", "json")
	assert.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.NewHandlerFromStrings(&buf, "info", "nope")
	assert.ErrorIs(t, err, log.ErrInvalidArgument)
}

func TestNewHandlerText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(log.NewHandler(&buf, slog.LevelInfo, log.FormatText))
	logger.Info("parsed", "fields", 7)

	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=parsed"), "output: %s", out)
	assert.True(t, strings.Contains(out, "fields=7"), "output: %s", out)
	// Text format omits source locations.
	assert.False(t, strings.Contains(out, "source="), "output: %s", out)
}
