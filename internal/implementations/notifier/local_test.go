package notifier

import (
	"context"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFiresOnce(t *testing.T) {
	now := time.Now()
	local := NewLocal(logging.NewFakeLogger(), func() time.Time { return now }, 1)
	defer local.Close()

	n := notification.Notification{Handle: "h-1", FireAt: now.Add(20 * time.Millisecond)}
	require.Nil(t, local.Schedule(context.Background(), n))
	assert.Equal(t, 1, local.Pending())

	select {
	case fired := <-local.Due():
		assert.Equal(t, n, fired)
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not fire")
	}

	select {
	case fired := <-local.Due():
		t.Fatalf("notification fired twice: %v", fired)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, 0, local.Pending())
}

func TestLocalPastFireTimeFiresImmediately(t *testing.T) {
	now := time.Now()
	local := NewLocal(logging.NewFakeLogger(), func() time.Time { return now }, 1)
	defer local.Close()

	require.Nil(t, local.Schedule(context.Background(), notification.Notification{
		Handle: "h-1",
		FireAt: now.Add(-time.Hour),
	}))

	select {
	case fired := <-local.Due():
		assert.Equal(t, notification.Handle("h-1"), fired.Handle)
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not fire")
	}
}

func TestLocalClose(t *testing.T) {
	now := time.Now()
	local := NewLocal(logging.NewFakeLogger(), func() time.Time { return now }, 1)

	for _, handle := range []notification.Handle{"h-1", "h-2"} {
		require.Nil(t, local.Schedule(context.Background(), notification.Notification{
			Handle: handle,
			FireAt: now.Add(time.Hour),
		}))
	}

	assert.Equal(t, 2, local.Close())
	assert.Equal(t, 0, local.Pending())
	assert.Equal(t, 0, local.Close())

	err := local.Schedule(context.Background(), notification.Notification{Handle: "h-3"})
	assert.ErrorIs(t, err, ErrBackendClosed)

	select {
	case <-local.Done():
	default:
		t.Fatal("done channel must be closed")
	}
}
