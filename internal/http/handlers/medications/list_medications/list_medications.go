package listmedications

import (
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/services"
	service "medreminder/internal/core/services/list_medications"
	"medreminder/internal/http/handlers/response"
	"net/http"
)

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

type Result struct {
	Medications  []response.Medication `json:"medications"`
	EmptyMessage string                `json:"emptyMessage,omitempty"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderError(rw, response.MsgListFailed, http.StatusInternalServerError)
		return
	}

	res := Result{Medications: make([]response.Medication, 0, len(result.Medications))}
	for _, m := range result.Medications {
		item := response.Medication{}
		item.FromDomainType(m)
		res.Medications = append(res.Medications, item)
	}
	if len(res.Medications) == 0 {
		res.EmptyMessage = response.MsgNoMedications
	}
	response.Render(rw, res, http.StatusOK)
}
