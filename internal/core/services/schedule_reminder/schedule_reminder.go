package schedulereminder

import (
	"context"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	Medication medication.Medication
}

type Result struct {
	Handle notification.Handle
	FireAt time.Time
}

type service struct {
	log      logging.Logger
	notifier notification.Notifier
	now      func() time.Time
}

// New arms exactly one notification IntervalMinutes after now. Permission is
// the caller's concern, see ensurenotificationpermission.
func New(
	log logging.Logger,
	notifier notification.Notifier,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, notifier: notifier, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem := input.Medication
	fireAt := FireAt(s.now(), rem.Interval)

	handle, err := s.notifier.ScheduleOneShot(ctx, notification.Request{
		MedicationID: string(rem.ID),
		Title:        notification.ReminderTitle,
		Body:         notification.ReminderBody(rem.Name),
		FireAt:       fireAt,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("medication", rem), logging.Entry("fireAt", fireAt))
		return result, fmt.Errorf("%w: %w", medication.ErrScheduling, err)
	}

	s.log.Info(
		ctx,
		"Medication reminder scheduled.",
		logging.Entry("medicationID", rem.ID),
		logging.Entry("handle", handle),
		logging.Entry("fireAt", fireAt),
	)
	result.Handle = handle
	result.FireAt = fireAt
	return result, nil
}

func FireAt(now time.Time, interval medication.Interval) time.Time {
	return carbon.Time2Carbon(now).AddMinutes(int(interval.Minutes())).Carbon2Time().In(now.Location())
}
