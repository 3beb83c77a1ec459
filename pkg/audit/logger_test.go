package audit_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listkit/pkg/audit"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := audit.NewLogger(nil)
	assert.ErrorIs(t, err, audit.ErrStorageRequired)
	assert.Nil(t, logger)

	logger, err = audit.NewLogger(audit.NewMemoryStorage())
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestLogger_Log(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := audit.NewMemoryStorage()
	logger, err := audit.NewLogger(store, audit.WithClock(func() time.Time { return at }))
	require.NoError(t, err)

	err = logger.Log(context.Background(), "item.create",
		audit.WithMetadata("item_id", "1700000000000_abc"),
	)
	require.NoError(t, err)

	event, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, "item.create", event.Action)
	assert.Equal(t, audit.ResultSuccess, event.Result)
	assert.Equal(t, at, event.CreatedAt)
	assert.Equal(t, "1700000000000_abc", event.Metadata["item_id"])
	assert.Empty(t, event.Reason)

	_, err = uuid.Parse(event.ID)
	assert.NoError(t, err)
}

func TestLogger_LogRejection(t *testing.T) {
	t.Parallel()

	store := audit.NewMemoryStorage()
	logger, err := audit.NewLogger(store)
	require.NoError(t, err)

	payload := "<script>" + strings.Repeat("alert(1);", 100) + "</script>"
	err = logger.LogRejection(context.Background(), "item.create", "malicious_pattern", payload)
	require.NoError(t, err)

	event, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, audit.ResultBlocked, event.Result)
	assert.Equal(t, "malicious_pattern", event.Reason)
	assert.NotEmpty(t, event.Excerpt)
	assert.LessOrEqual(t, len(event.Excerpt), 64)
	assert.NotContains(t, event.Excerpt, payload)
}

func TestLogger_MissingAction(t *testing.T) {
	t.Parallel()

	store := audit.NewMemoryStorage()
	logger, err := audit.NewLogger(store)
	require.NoError(t, err)

	err = logger.Log(context.Background(), "")
	assert.ErrorIs(t, err, audit.ErrEventValidation)
	assert.Empty(t, store.Events())
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", audit.Excerpt("short"))
	assert.Equal(t, "a b", audit.Excerpt("  a \n b  "))

	long := strings.Repeat("x", 500)
	got := audit.Excerpt(long)
	assert.Len(t, got, 64)
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	store := audit.NewMemoryStorage()

	_, ok := store.Last()
	assert.False(t, ok)

	require.NoError(t, store.Store(context.Background(), audit.Event{ID: "1", Action: "a"}))
	require.NoError(t, store.Store(context.Background(), audit.Event{ID: "2", Action: "b"}))

	events := store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].Action)

	last, ok := store.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Action)
}
