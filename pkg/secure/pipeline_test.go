package secure_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listkit/pkg/audit"
	"github.com/dmitrymomot/listkit/pkg/ratelimit"
	"github.com/dmitrymomot/listkit/pkg/secure"
)

func newPipeline(t *testing.T) (*secure.Pipeline, *audit.MemoryStorage) {
	t.Helper()

	limiter, err := ratelimit.New(ratelimit.DefaultLimit, ratelimit.DefaultWindow)
	require.NoError(t, err)

	store := audit.NewMemoryStorage()
	auditor, err := audit.NewLogger(store)
	require.NoError(t, err)

	pipeline, err := secure.NewPipeline(limiter, auditor)
	require.NoError(t, err)

	return pipeline, store
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()

	limiter, err := ratelimit.New(10, time.Minute)
	require.NoError(t, err)
	auditor, err := audit.NewLogger(audit.NewMemoryStorage())
	require.NoError(t, err)

	_, err = secure.NewPipeline(nil, auditor)
	assert.ErrorIs(t, err, secure.ErrLimiterRequired)

	_, err = secure.NewPipeline(limiter, nil)
	assert.ErrorIs(t, err, secure.ErrAuditorRequired)

	p, err := secure.NewPipeline(limiter, auditor)
	assert.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPipeline_ValidateAndSanitize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("accepts and sanitizes plain text", func(t *testing.T) {
		t.Parallel()
		pipeline, store := newPipeline(t)

		res := pipeline.ValidateAndSanitize(ctx, "Buy milk", "item.create")
		assert.True(t, res.OK)
		assert.Equal(t, "Buy milk", res.Value)
		assert.Empty(t, res.Reason)
		assert.NoError(t, res.Err())

		event, ok := store.Last()
		require.True(t, ok)
		assert.Equal(t, "item.create", event.Action)
		assert.Equal(t, audit.ResultSuccess, event.Result)
	})

	t.Run("escapes html significant characters", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		res := pipeline.ValidateAndSanitize(ctx, `tea & "biscuits"`, "item.create")
		require.True(t, res.OK)
		assert.Equal(t, "tea &amp; &quot;biscuits&quot;", res.Value)
	})

	t.Run("rejects script tags in any casing", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		for _, input := range []string{
			"<script>alert(1)</script>",
			"<SCRIPT src=//evil.example></SCRIPT>",
			"text with <ScRiPt type=module> inside",
		} {
			res := pipeline.ValidateAndSanitize(ctx, input, "item.create")
			assert.False(t, res.OK, "input %q should be rejected", input)
			assert.Equal(t, secure.ReasonMaliciousPattern, res.Reason)
			assert.ErrorIs(t, res.Err(), secure.ErrMaliciousPattern)
		}
	})

	t.Run("rejects over-length input regardless of content", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		res := pipeline.ValidateAndSanitize(ctx, strings.Repeat("a", 501), "item.create")
		assert.False(t, res.OK)
		assert.Equal(t, secure.ReasonTooLong, res.Reason)

		// Length wins even over malicious content: it is an earlier stage.
		payload := "<script>" + strings.Repeat("x", 500) + "</script>"
		res = pipeline.ValidateAndSanitize(ctx, payload, "item.create")
		assert.Equal(t, secure.ReasonTooLong, res.Reason)
	})

	t.Run("rejects empty input defensively", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		for _, input := range []string{"", "   ", "\t\n"} {
			res := pipeline.ValidateAndSanitize(ctx, input, "item.create")
			assert.False(t, res.OK)
			assert.Equal(t, secure.ReasonEmpty, res.Reason)
		}
	})

	t.Run("rejects injection content", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		res := pipeline.ValidateAndSanitize(ctx, "1; DROP TABLE items", "item.create")
		assert.False(t, res.OK)
		assert.Equal(t, secure.ReasonSuspiciousContent, res.Reason)
	})

	t.Run("rate limits per category", func(t *testing.T) {
		t.Parallel()
		limiter, err := ratelimit.New(3, time.Minute)
		require.NoError(t, err)
		auditor, err := audit.NewLogger(audit.NewMemoryStorage())
		require.NoError(t, err)
		pipeline, err := secure.NewPipeline(limiter, auditor)
		require.NoError(t, err)

		for range 3 {
			res := pipeline.ValidateAndSanitize(ctx, "ok", "item.create")
			require.True(t, res.OK)
		}

		res := pipeline.ValidateAndSanitize(ctx, "ok", "item.create")
		assert.False(t, res.OK)
		assert.Equal(t, secure.ReasonRateLimited, res.Reason)

		// A different category has its own window.
		res = pipeline.ValidateAndSanitize(ctx, "ok", "item.update")
		assert.True(t, res.OK)
	})

	t.Run("rejections carry bounded excerpts", func(t *testing.T) {
		t.Parallel()
		pipeline, store := newPipeline(t)

		pipeline.ValidateAndSanitize(ctx, "<iframe src=//evil.example>", "item.create")

		event, ok := store.Last()
		require.True(t, ok)
		assert.Equal(t, audit.ResultBlocked, event.Result)
		assert.Equal(t, "malicious_pattern", event.Reason)
		assert.LessOrEqual(t, len(event.Excerpt), 64)
	})
}

func TestPipeline_ValidateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("accepts generated shape", func(t *testing.T) {
		t.Parallel()
		pipeline, _ := newPipeline(t)

		res := pipeline.ValidateID(ctx, "1700000000000_k3j9x2m4q", "item.delete")
		assert.True(t, res.OK)
		assert.Equal(t, "1700000000000_k3j9x2m4q", res.Value)
	})

	t.Run("rejects foreign identifiers", func(t *testing.T) {
		t.Parallel()
		pipeline, store := newPipeline(t)

		for _, id := range []string{"", "nope", "../../etc/passwd", "1700_ABC", "1'; DROP--"} {
			res := pipeline.ValidateID(ctx, id, "item.delete")
			assert.False(t, res.OK, "id %q should be rejected", id)
			assert.Equal(t, secure.ReasonInvalidID, res.Reason)
			assert.ErrorIs(t, res.Err(), secure.ErrInvalidID)
		}

		event, ok := store.Last()
		require.True(t, ok)
		assert.Equal(t, "invalid_id", event.Reason)
	})
}

func TestReasonRoundTrip(t *testing.T) {
	t.Parallel()

	reasons := []secure.Reason{
		secure.ReasonEmpty,
		secure.ReasonTooLong,
		secure.ReasonRateLimited,
		secure.ReasonMaliciousPattern,
		secure.ReasonSuspiciousContent,
		secure.ReasonContextValidation,
		secure.ReasonInvalidID,
	}

	for _, reason := range reasons {
		err := reason.Err()
		require.Error(t, err, "reason %s must map to an error", reason)

		got, ok := secure.ReasonFromErr(err)
		require.True(t, ok)
		assert.Equal(t, reason, got)
	}

	_, ok := secure.ReasonFromErr(context.Canceled)
	assert.False(t, ok)
	assert.Nil(t, secure.Reason("").Err())
}
