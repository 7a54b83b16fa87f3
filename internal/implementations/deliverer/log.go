package deliverer

import (
	"context"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
)

type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Log{log: log}
}

func (d *Log) Deliver(ctx context.Context, n notification.Notification) error {
	d.log.Info(
		ctx,
		"Reminder has been fired.",
		logging.Entry("handle", n.Handle),
		logging.Entry("medicationId", n.MedicationID),
		logging.Entry("title", n.Title),
		logging.Entry("body", n.Body),
	)
	return nil
}
