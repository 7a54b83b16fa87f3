package permission

import (
	"errors"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
	service "medreminder/internal/core/services/ensure_notification_permission"
	"medreminder/internal/http/handlers/response"
	"net/http"
)

// Handler reports the notification permission status. Unless it is created
// with checkOnly it also asks for the permission when it is not granted yet.
type Handler struct {
	service   services.Service[service.Input, service.Result]
	checkOnly bool
}

func New(
	service services.Service[service.Input, service.Result],
	checkOnly bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, checkOnly: checkOnly}
}

type Result struct {
	Status    string `json:"status"`
	Requested bool   `json:"requested"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{CheckOnly: h.checkOnly})
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrPermissionDenied):
			response.RenderError(rw, response.MsgPermissionRequired, http.StatusForbidden)
		default:
			response.RenderError(rw, response.MsgPermissionCheckFailed, http.StatusInternalServerError)
		}
		return
	}

	response.Render(rw, Result{Status: result.Status.String(), Requested: result.Requested}, http.StatusOK)
}
