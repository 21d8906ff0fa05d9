package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestNewWithFile(t *testing.T) {
	log := New(Options{Level: "debug", File: filepath.Join(t.TempDir(), "app.log")})
	assert.NotPanics(t, func() {
		log.Info("hello", "k", "v")
		log.Debug("debug line")
		log.Warn("warn line")
		log.Error("boom", errors.New("cause"), "reminder_id", "abc")
		Sync(log)
	})
}

func TestNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Error("ignored", nil)
		Sync(log)
	})
}
