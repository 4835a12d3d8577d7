package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "debug sees error", logLevel: "debug", messageLevel: "error", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees warn", logLevel: "info", messageLevel: "warn", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},
		{name: "invalid level defaults to warn", logLevel: "loud", messageLevel: "info", shouldAppear: false},
		{name: "level is case-insensitive", logLevel: " DEBUG ", messageLevel: "debug", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			l := NewConsoleLogger(buf, tt.logLevel, false)

			switch tt.messageLevel {
			case "debug":
				l.LogDebug("msg")
			case "info":
				l.LogInfo("msg")
			case "warn":
				l.LogWarn("msg")
			case "error":
				l.LogError("msg")
			}

			want := "[" + strings.ToUpper(tt.messageLevel) + "] msg\n"
			if tt.shouldAppear {
				assert.Equal(t, want, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	l := NewConsoleLogger(nil, "debug", true)
	assert.NotPanics(t, func() { l.LogError("dropped") })
}

func TestConsoleLogger_ColorTags(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewConsoleLogger(buf, "debug", true)

	l.LogWarn("careful")

	out := buf.String()
	assert.Contains(t, out, "\x1b[33mWARN")
	assert.True(t, strings.HasSuffix(out, "] careful\n"), "got %q", out)
}

func TestConsoleLogger_Level(t *testing.T) {
	assert.Equal(t, "info", NewConsoleLogger(nil, "INFO", false).Level())
	assert.Equal(t, "warn", NewConsoleLogger(nil, "", false).Level())
}
