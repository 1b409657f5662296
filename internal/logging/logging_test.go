package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	l := New(Config{Level: "warn", Format: "json"})
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l = New(Config{Level: "bogus"})
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_FileSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "globed.log")

	l := New(cfg)
	l.Info("hello file")
	_ = l.Sync()

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello file"`)
}

func TestGetLogger_Default(t *testing.T) {
	l := Init(Config{Level: "debug"})
	assert.Same(t, l, GetLogger())
}
