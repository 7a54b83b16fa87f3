package addmedication

import (
	"context"
	c "medreminder/internal/core/domain/common"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
	schedulereminder "medreminder/internal/core/services/schedule_reminder"
	"time"
)

type Input struct {
	Name         string
	IntervalSpec string
	ClientKey    string
}

func (i Input) GetRateLimitKey() string {
	return "add_medication::" + i.ClientKey
}

type Result struct {
	Medication medication.Medication
	// Present only when the reminder was armed. A failed scheduling does not
	// roll back the stored medication.
	Handle c.Optional[notification.Handle]
	FireAt c.Optional[time.Time]
}

func (r Result) ReminderScheduled() bool {
	return r.Handle.IsPresent
}

type service struct {
	log               logging.Logger
	store             medication.Store
	identityGenerator medication.IdentityGenerator
	scheduleReminder  services.Service[schedulereminder.Input, schedulereminder.Result]
}

func New(
	log logging.Logger,
	store medication.Store,
	identityGenerator medication.IdentityGenerator,
	scheduleReminder services.Service[schedulereminder.Input, schedulereminder.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if identityGenerator == nil {
		panic(e.NewNilArgumentError("identityGenerator"))
	}
	if scheduleReminder == nil {
		panic(e.NewNilArgumentError("scheduleReminder"))
	}
	return &service{
		log:               log,
		store:             store,
		identityGenerator: identityGenerator,
		scheduleReminder:  scheduleReminder,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	med, err := medication.NewMedication(s.identityGenerator.GenerateID(), input.Name, input.IntervalSpec)
	if err != nil {
		s.log.Info(ctx, "Medication input is not valid.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}

	if err := s.store.Add(ctx, med); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("medication", med))
		return result, err
	}
	result.Medication = med

	scheduled, err := s.scheduleReminder.Run(ctx, schedulereminder.Input{Medication: med})
	if err != nil {
		s.log.Warning(
			ctx,
			"Medication added but its reminder was not scheduled.",
			logging.Entry("medicationID", med.ID),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Medication successfully added.",
		logging.Entry("medicationID", med.ID),
		logging.Entry("interval", med.Interval),
		logging.Entry("fireAt", scheduled.FireAt),
	)
	result.Handle = c.Some(scheduled.Handle)
	result.FireAt = c.Some(scheduled.FireAt)
	return result, nil
}
