package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const ReminderTitle = "Hora do Remédio"

func ReminderBody(medicationName string) string {
	return fmt.Sprintf("Está na hora de tomar %s", medicationName)
}

var (
	ErrPermissionDenied = errors.New("notification permission is not granted")
	ErrDelivery         = errors.New("notification could not be delivered")
)

type Handle string

type HandleGenerator interface {
	GenerateHandle() Handle
}

// Request asks for one delivery at FireAt. There is no recurrence.
type Request struct {
	MedicationID string
	Title        string
	Body         string
	FireAt       time.Time
}

// Notification is a scheduled request that fires exactly once.
type Notification struct {
	Handle       Handle
	MedicationID string
	Title        string
	Body         string
	FireAt       time.Time
}

func FromRequest(handle Handle, r Request) Notification {
	return Notification{
		Handle:       handle,
		MedicationID: r.MedicationID,
		Title:        r.Title,
		Body:         r.Body,
		FireAt:       r.FireAt,
	}
}

type Notifier interface {
	GetPermissionStatus(ctx context.Context) (PermissionStatus, error)
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	// ScheduleOneShot does not check the permission status: whether a
	// notification armed without permission is delivered depends on the
	// backend.
	ScheduleOneShot(ctx context.Context, r Request) (Handle, error)
}

// Deliverer shows a fired notification to the user.
type Deliverer interface {
	Deliver(ctx context.Context, n Notification) error
}
