package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = Init("info", "json") })

	require.NoError(t, Init("debug", "text"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, GetLogger().Formatter)

	require.NoError(t, Init("warn", "json"))
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, GetLogger().Formatter)

	assert.Error(t, Init("loud", "json"))
}

func TestCorrelationIDContext(t *testing.T) {
	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))

	ctx := ContextWithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", CorrelationIDFromContext(ctx))
}

func TestFromContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	entry := logger.WithField(LoggerKeyComponentName, "DonationService")
	ctx := ContextWithCorrelationID(context.Background(), "abc-123")
	FromContext(ctx, entry).Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "DonationService", line[LoggerKeyComponentName])
	assert.Equal(t, "abc-123", line[LoggerKeyCorrelationID])
	assert.Equal(t, "hello", line["msg"])
}

func TestWithComponent(t *testing.T) {
	entry := WithComponent("Database")
	assert.Equal(t, "Database", entry.Data[LoggerKeyComponentName])
}
