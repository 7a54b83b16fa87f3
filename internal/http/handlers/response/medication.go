package response

import "medreminder/internal/core/domain/medication"

type Medication struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IntervalMinutes uint32 `json:"intervalMinutes"`
	Hours           uint32 `json:"hours"`
	Minutes         uint32 `json:"minutes"`
	Description     string `json:"description"`
}

func (m *Medication) FromDomainType(dm medication.Medication) {
	m.ID = string(dm.ID)
	m.Name = dm.Name
	m.IntervalMinutes = dm.Interval.Minutes()
	m.Hours = dm.Interval.Hours()
	m.Minutes = dm.Interval.RemainderMinutes()
	m.Description = dm.Interval.Describe()
}
