package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
}

func TestLogger_VerboseOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	Debug("debug %s", "msg")
	Info("info msg")
	Warn("warn msg")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] debug msg")
	assert.Contains(t, out, "[INFO] info msg")
	assert.Contains(t, out, "[WARN] warn msg")
}

func TestLogger_IsVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}
