package addmedication

import (
	"encoding/json"
	"io"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/services"
	service "medreminder/internal/core/services/add_medication"
	"medreminder/internal/http/handlers/client"
	"medreminder/internal/http/handlers/response"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Name     string `json:"name"`
	Interval string `json:"interval"`
}

type Result struct {
	Medication        response.Medication `json:"medication"`
	ReminderScheduled bool                `json:"reminderScheduled"`
	FireAt            *time.Time          `json:"fireAt,omitempty"`
	Message           string              `json:"message"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// Validate bounds the input size only; emptiness and the interval format are
// checked by the medication domain.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(0, 256)),
		validation.Field(&i.Interval, validation.Length(0, 32)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, response.MsgInvalidRequest, http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Name:         input.Name,
			IntervalSpec: input.Interval,
			ClientKey:    client.KeyFromContext(r.Context()),
		},
	)
	if err != nil {
		response.RenderServiceError(rw, err, response.MsgSaveFailed)
		return
	}

	res := Result{
		ReminderScheduled: result.ReminderScheduled(),
		FireAt:            result.FireAt.Pointer(),
		Message:           response.MsgSaved,
	}
	res.Medication.FromDomainType(result.Medication)
	response.Render(rw, res, http.StatusCreated)
}
