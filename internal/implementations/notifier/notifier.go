package notifier

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
)

// Backend arms a notification so that it is handed over for delivery once,
// at or after its fire time.
type Backend interface {
	Schedule(ctx context.Context, n notification.Notification) error
}

type Notifier struct {
	log         logging.Logger
	permissions *Permissions
	backend     Backend
	handles     notification.HandleGenerator
}

func New(
	log logging.Logger,
	permissions *Permissions,
	backend Backend,
	handles notification.HandleGenerator,
) *Notifier {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if permissions == nil {
		panic(e.NewNilArgumentError("permissions"))
	}
	if backend == nil {
		panic(e.NewNilArgumentError("backend"))
	}
	if handles == nil {
		panic(e.NewNilArgumentError("handles"))
	}
	return &Notifier{log: log, permissions: permissions, backend: backend, handles: handles}
}

func (n *Notifier) GetPermissionStatus(ctx context.Context) (notification.PermissionStatus, error) {
	return n.permissions.Status(ctx)
}

func (n *Notifier) RequestPermission(ctx context.Context) (notification.PermissionStatus, error) {
	status, err := n.permissions.Request(ctx)
	if err != nil {
		return status, err
	}
	n.log.Info(ctx, "Notification permission requested.", logging.Entry("status", status))
	return status, nil
}

func (n *Notifier) ScheduleOneShot(ctx context.Context, r notification.Request) (notification.Handle, error) {
	scheduled := notification.FromRequest(n.handles.GenerateHandle(), r)
	if err := n.backend.Schedule(ctx, scheduled); err != nil {
		return "", err
	}
	return scheduled.Handle, nil
}
