package notifier

import (
	"context"
	"errors"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"sync"
	"time"
)

var ErrBackendClosed = errors.New("notification backend is closed")

// Local arms in-process timers. Fired notifications are emitted on Due();
// pending ones are lost when the process stops.
type Local struct {
	log    logging.Logger
	now    func() time.Time
	due    chan notification.Notification
	done   chan struct{}
	timers map[notification.Handle]*time.Timer
	closed bool
	lock   sync.Mutex
}

func NewLocal(log logging.Logger, now func() time.Time, bufferSize int) *Local {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Local{
		log:    log,
		now:    now,
		due:    make(chan notification.Notification, bufferSize),
		done:   make(chan struct{}),
		timers: make(map[notification.Handle]*time.Timer),
	}
}

func (l *Local) Schedule(ctx context.Context, n notification.Notification) error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.closed {
		return ErrBackendClosed
	}

	delay := n.FireAt.Sub(l.now())
	if delay < 0 {
		delay = 0
	}
	l.timers[n.Handle] = time.AfterFunc(delay, func() { l.fire(n) })

	l.log.Info(
		ctx,
		"Local notification timer armed.",
		logging.Entry("handle", n.Handle),
		logging.Entry("delay", delay),
	)
	return nil
}

func (l *Local) fire(n notification.Notification) {
	l.lock.Lock()
	delete(l.timers, n.Handle)
	l.lock.Unlock()

	select {
	case l.due <- n:
	case <-l.done:
	}
}

// Due yields notifications whose timers fired.
func (l *Local) Due() <-chan notification.Notification {
	return l.due
}

// Done is closed by Close.
func (l *Local) Done() <-chan struct{} {
	return l.done
}

func (l *Local) Pending() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return len(l.timers)
}

// Close stops every pending timer and returns how many were dropped.
func (l *Local) Close() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.closed {
		return 0
	}
	l.closed = true
	close(l.done)

	dropped := 0
	for handle, timer := range l.timers {
		if timer.Stop() {
			dropped++
		}
		delete(l.timers, handle)
	}
	return dropped
}
