package removemedication

import (
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/services"
	service "medreminder/internal/core/services/remove_medication"
	"medreminder/internal/http/handlers/client"
	"medreminder/internal/http/handlers/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const ID_MAX_LEN = 128

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "medicationID")
	if id == "" || len(id) > ID_MAX_LEN {
		response.RenderError(rw, response.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{ID: medication.ID(id), ClientKey: client.KeyFromContext(r.Context())},
	)
	if err != nil {
		response.RenderServiceError(rw, err, response.MsgRemoveFailed)
		return
	}

	response.RenderMessage(rw, response.MsgRemoved, http.StatusOK)
}
