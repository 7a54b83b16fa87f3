package notifier

import (
	"context"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/domain/storage"
)

const DefaultPermissionKey = "@notification_permission"

// Permissions persists the notification permission decision. Requesting
// permission grants it only when notifications are allowed by configuration.
type Permissions struct {
	kv      storage.KeyValue
	key     string
	allowed bool
}

func NewPermissions(kv storage.KeyValue, key string, allowed bool) *Permissions {
	if kv == nil {
		panic(e.NewNilArgumentError("kv"))
	}
	if key == "" {
		key = DefaultPermissionKey
	}
	return &Permissions{kv: kv, key: key, allowed: allowed}
}

func (p *Permissions) Status(ctx context.Context) (notification.PermissionStatus, error) {
	raw, found, err := p.kv.Get(ctx, p.key)
	if err != nil {
		return notification.PermissionUndetermined, err
	}
	if !found {
		return notification.PermissionUndetermined, nil
	}
	return notification.ParsePermissionStatus(raw)
}

func (p *Permissions) Request(ctx context.Context) (notification.PermissionStatus, error) {
	status := notification.PermissionDenied
	if p.allowed {
		status = notification.PermissionGranted
	}
	if err := p.kv.Set(ctx, p.key, status.String()); err != nil {
		return notification.PermissionUndetermined, fmt.Errorf("could not save permission status: %w", err)
	}
	return status, nil
}
