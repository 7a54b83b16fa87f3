package events

import (
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/logging"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler streams fired reminders to the client as server-sent events.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	stream    string
}

func New(log logging.Logger, sseServer *sse.Server, stream string) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if stream == "" {
		panic("stream name must not be empty")
	}
	return &Handler{log: log, sseServer: sseServer, stream: stream}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if !h.sseServer.StreamExists(h.stream) {
		h.sseServer.CreateStream(h.stream)
	}

	query := r.URL.Query()
	query.Set("stream", h.stream)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to notification events.", logging.Entry("remoteAddr", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
	h.log.Info(r.Context(), "Unsubscribed from notification events.", logging.Entry("remoteAddr", r.RemoteAddr))
}
