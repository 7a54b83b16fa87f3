package listmedications

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/services"
)

type Input struct{}

type Result struct {
	Medications []medication.Medication
}

type service struct {
	log   logging.Logger
	store medication.Store
}

// New reads the store on every call; callers refresh their view with it
// instead of caching the collection.
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
	medications, err := s.store.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	s.log.Debug(ctx, "Medications successfully read.", logging.Entry("count", len(medications)))
	result.Medications = medications
	return result, nil
}
