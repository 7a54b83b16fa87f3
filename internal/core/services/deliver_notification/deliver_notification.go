package delivernotification

import (
	"context"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
	"time"
)

type Input struct {
	Notification notification.Notification
}

type Result struct {
	Delay time.Duration
}

type service struct {
	log       logging.Logger
	deliverer notification.Deliverer
	now       func() time.Time
}

// New handles a one-shot notification whose fire time has come.
func New(
	log logging.Logger,
	deliverer notification.Deliverer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if deliverer == nil {
		panic(e.NewNilArgumentError("deliverer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, deliverer: deliverer, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	n := input.Notification
	if n.Handle == "" {
		return result, e.NewInvalidStateError("notification for medication %s has no handle", n.MedicationID)
	}

	result.Delay = s.now().Sub(n.FireAt)
	if result.Delay < 0 {
		s.log.Warning(
			ctx,
			"Notification delivered before its fire time.",
			logging.Entry("handle", n.Handle),
			logging.Entry("delay", result.Delay),
		)
	}

	if err := s.deliverer.Deliver(ctx, n); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("handle", n.Handle))
		return result, fmt.Errorf("%w: %w", notification.ErrDelivery, err)
	}

	s.log.Info(
		ctx,
		"Medication reminder delivered.",
		logging.Entry("handle", n.Handle),
		logging.Entry("medicationID", n.MedicationID),
		logging.Entry("delay", result.Delay),
	)
	return result, nil
}
