package medication

import (
	e "medreminder/internal/core/domain/errors"
)

type ID string

// Medication is immutable once created: there is no update operation, only
// Store.Add and Store.Remove.
type Medication struct {
	ID       ID
	Name     string
	Interval Interval
}

// NewMedication validates the raw input of the add flow and builds a record.
// Nothing is persisted here.
func NewMedication(id ID, name string, intervalSpec string) (m Medication, err error) {
	if name == "" || intervalSpec == "" {
		return m, ErrFieldsRequired
	}
	interval, err := ParseInterval(intervalSpec)
	if err != nil {
		return m, err
	}
	return Medication{ID: id, Name: name, Interval: interval}, nil
}

func (m Medication) Validate() error {
	if m.ID == "" {
		return e.NewInvalidStateError("medication ID must not be empty")
	}
	if m.Name == "" {
		return e.NewInvalidStateError("medication %s has an empty name", m.ID)
	}
	return nil
}

type IdentityGenerator interface {
	GenerateID() ID
}
