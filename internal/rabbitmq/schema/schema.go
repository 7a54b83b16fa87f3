package schema

import (
	"encoding/json"
	"medreminder/internal/core/domain/notification"
	"time"
)

type Notification struct {
	Handle       string    `json:"handle"`
	MedicationID string    `json:"medicationId"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	FireAt       time.Time `json:"fireAt"`
}

func FromDomain(n notification.Notification) Notification {
	return Notification{
		Handle:       string(n.Handle),
		MedicationID: n.MedicationID,
		Title:        n.Title,
		Body:         n.Body,
		FireAt:       n.FireAt,
	}
}

func (n *Notification) ToDomain() notification.Notification {
	return notification.Notification{
		Handle:       notification.Handle(n.Handle),
		MedicationID: n.MedicationID,
		Title:        n.Title,
		Body:         n.Body,
		FireAt:       n.FireAt,
	}
}

func (n *Notification) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *Notification) Unmarshal(data []byte) error {
	return json.Unmarshal(data, n)
}
