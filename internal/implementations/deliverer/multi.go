package deliverer

import (
	"context"
	"errors"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
)

type Named struct {
	Name      string
	Deliverer notification.Deliverer
}

// Multi forwards a notification to every deliverer. It fails only when all
// of them fail.
type Multi struct {
	log        logging.Logger
	deliverers []Named
}

func NewMulti(log logging.Logger, deliverers ...Named) *Multi {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Multi{log: log, deliverers: deliverers}
}

func (m *Multi) Deliver(ctx context.Context, n notification.Notification) error {
	var errs []error
	for _, d := range m.deliverers {
		err := d.Deliverer.Deliver(ctx, n)
		if err != nil {
			logging.Error(ctx, m.log, err, logging.Entry("deliverer", d.Name), logging.Entry("handle", n.Handle))
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 && len(errs) == len(m.deliverers) {
		return errors.Join(errs...)
	}
	return nil
}
