package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic-backoffice/pkg/log"
)

func TestInit(t *testing.T) {
	t.Run("console development", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true})
		assert.NotNil(t, l)
		l.Infof(context.Background(), "hello %s", "clinic")
	})

	t.Run("json production with bad level", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "nope", Mode: "production", Encoding: "json"})
		assert.NotNil(t, l)
		l.Debug(context.Background(), "dropped")
	})
}

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", log.RequestIDFromContext(ctx))
	assert.Empty(t, log.RequestIDFromContext(context.Background()))
}
