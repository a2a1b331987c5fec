package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONCarriesAppAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("jyotish", &Config{Encoding: "json", Level: "info"}, &buf)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "req-1")
	log.InfoContext(ctx, "chart computed", "bodies", 9)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "jyotish", rec["app"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "chart computed", rec["msg"])
	assert.EqualValues(t, 9, rec["bodies"])
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter("jyotish", &Config{Encoding: "console", Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_InvalidConfig(t *testing.T) {
	_, err := NewWithWriter("jyotish", &Config{Encoding: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithWriter("jyotish", &Config{Level: "trace"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRequestID_Empty(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
