package identity

import (
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/notification"

	"github.com/google/uuid"
)

// UUID generates random (version 4) identifiers for medications and
// scheduled notifications.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateID() medication.ID {
	return medication.ID(uuid.NewString())
}

func (g *UUID) GenerateHandle() notification.Handle {
	return notification.Handle(uuid.NewString())
}
