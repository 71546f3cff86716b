package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel(""))
	assert.Equal(t, zap.InfoLevel, ParseLevel("verbose"))
}

func TestSetLevel(t *testing.T) {
	prev := Level.Level()
	defer Level.SetLevel(prev)

	SetLevel("error")
	assert.Equal(t, zap.ErrorLevel, Level.Level())
	assert.False(t, Instance.Desugar().Core().Enabled(zap.InfoLevel))
}
