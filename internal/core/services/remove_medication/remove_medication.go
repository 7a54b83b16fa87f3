package removemedication

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/services"
)

type Input struct {
	ID        medication.ID
	ClientKey string
}

func (i Input) GetRateLimitKey() string {
	return "remove_medication::" + i.ClientKey
}

type Result struct{}

type service struct {
	log   logging.Logger
	store medication.Store
}

// New removes medications by ID. A reminder that was already armed for the
// removed medication still fires.
func New(log logging.Logger, store medication.Store) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{log: log, store: store}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.store.Remove(ctx, input.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	s.log.Info(ctx, "Medication has been successfully removed.", logging.Entry("medicationID", input.ID))
	return result, nil
}
