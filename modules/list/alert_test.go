package list_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listkit/modules/list"
)

// manualScheduler captures deferred clears so tests fire them explicitly.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) schedule(_ time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

func (m *manualScheduler) fire(i int) {
	m.pending[i]()
}

func TestAlerter_RaiseAndAutoClear(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	alerter := list.NewAlerter(list.WithScheduler(sched.schedule))

	alerter.Raise("blocked")

	state := alerter.State()
	assert.True(t, state.Blocked)
	assert.Equal(t, "blocked", state.Message)
	assert.Equal(t, 1, state.AttemptCount)

	require.Len(t, sched.pending, 1)
	sched.fire(0)

	assert.Equal(t, list.AlertState{}, alerter.State())
}

func TestAlerter_StaleTimerDoesNotClobber(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	alerter := list.NewAlerter(list.WithScheduler(sched.schedule))

	alerter.Raise("first")
	alerter.Raise("second")
	require.Len(t, sched.pending, 2)

	// The timer scheduled for the first alert fires after the second alert
	// superseded it: the newer state must survive.
	sched.fire(0)

	state := alerter.State()
	assert.True(t, state.Blocked)
	assert.Equal(t, "second", state.Message)
	assert.Equal(t, 2, state.AttemptCount)

	// The second timer is still current and clears.
	sched.fire(1)
	assert.Equal(t, list.AlertState{}, alerter.State())
}

func TestAlerter_SuccessSupersedesTimer(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	alerter := list.NewAlerter(list.WithScheduler(sched.schedule))

	alerter.Raise("blocked")
	alerter.Clear()
	assert.Equal(t, list.AlertState{}, alerter.State())

	alerter.Raise("new alert")

	// The stale timer from the first raise fires after both the clear and
	// the new raise; it must not wipe the new alert.
	sched.fire(0)
	assert.Equal(t, "new alert", alerter.State().Message)
}

func TestAlerter_AttemptCountAccumulates(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	alerter := list.NewAlerter(list.WithScheduler(sched.schedule))

	alerter.Raise("a")
	alerter.Raise("b")
	alerter.Raise("c")
	assert.Equal(t, 3, alerter.State().AttemptCount)

	alerter.Clear()
	assert.Equal(t, 0, alerter.State().AttemptCount)
}

func TestAlerter_RealTimerClears(t *testing.T) {
	t.Parallel()

	alerter := list.NewAlerter(list.WithClearDelay(20 * time.Millisecond))
	alerter.Raise("blocked")
	require.True(t, alerter.State().Blocked)

	assert.Eventually(t, func() bool {
		return !alerter.State().Blocked
	}, time.Second, 5*time.Millisecond)
}
