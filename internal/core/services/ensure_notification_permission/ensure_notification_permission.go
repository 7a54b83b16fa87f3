package ensurenotificationpermission

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
)

type Input struct {
	// CheckOnly reports the current status without requesting permission.
	CheckOnly bool
}

type Result struct {
	Status    notification.PermissionStatus
	Requested bool
}

type service struct {
	log      logging.Logger
	notifier notification.Notifier
}

func New(log logging.Logger, notifier notification.Notifier) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{log: log, notifier: notifier}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	status, err := s.notifier.GetPermissionStatus(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Status = status
	if status.IsGranted() || input.CheckOnly {
		return result, nil
	}

	status, err = s.notifier.RequestPermission(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Status = status
	result.Requested = true
	if !status.IsGranted() {
		s.log.Info(ctx, "Notification permission was not granted.", logging.Entry("status", status))
		return result, notification.ErrPermissionDenied
	}

	s.log.Info(ctx, "Notification permission granted.")
	return result, nil
}
