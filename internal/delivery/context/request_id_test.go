package context

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantSame bool
	}{
		{name: "client id kept", raw: "req-123", wantSame: true},
		{name: "empty", raw: ""},
		{name: "too long", raw: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "contains space", raw: "req 123"},
		{name: "contains newline", raw: "req\n123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.raw)
			if tt.wantSame {
				assert.Equal(t, tt.raw, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithUserID(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	ctx := WithUserID(context.Background(), userID, fallback)

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)
	assert.NotNil(t, GetLogger(ctx))

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
