package deliverer

import (
	"context"
	"encoding/json"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/notification"
	"time"

	"github.com/r3labs/sse/v2"
)

const (
	StreamName = "notifications"
	eventName  = "reminder"
)

type sseEvent struct {
	Handle       string    `json:"handle"`
	MedicationID string    `json:"medicationId"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	FireAt       time.Time `json:"fireAt"`
}

// SSE publishes fired reminders to the clients subscribed to StreamName.
type SSE struct {
	server *sse.Server
}

func NewSSE(server *sse.Server) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	if !server.StreamExists(StreamName) {
		server.CreateStream(StreamName)
	}
	return &SSE{server: server}
}

func (s *SSE) Deliver(ctx context.Context, n notification.Notification) error {
	data, err := json.Marshal(sseEvent{
		Handle:       string(n.Handle),
		MedicationID: n.MedicationID,
		Title:        n.Title,
		Body:         n.Body,
		FireAt:       n.FireAt,
	})
	if err != nil {
		return err
	}
	s.server.Publish(StreamName, &sse.Event{
		ID:    []byte(n.Handle),
		Event: []byte(eventName),
		Data:  data,
	})
	return nil
}
