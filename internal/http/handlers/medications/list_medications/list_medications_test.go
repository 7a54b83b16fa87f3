package listmedications

import (
	"context"
	"errors"
	"medreminder/internal/core/domain/medication"
	service "medreminder/internal/core/services/list_medications"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	medications []medication.Medication
	err         error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.Medications = s.medications
	return result, nil
}

func TestListMedicationsHandler(t *testing.T) {
	cases := []struct {
		id             string
		service        *stubService
		expectedStatus int
		expectedBody   string
	}{
		{
			id: "items in insertion order",
			service: &stubService{medications: []medication.Medication{
				{ID: "1", Name: "Aspirin", Interval: medication.NewInterval(8, 0)},
				{ID: "2", Name: "Vitamin D", Interval: medication.NewInterval(0, 45)},
			}},
			expectedStatus: http.StatusOK,
			expectedBody: `{"medications": [
				{"id": "1", "name": "Aspirin", "intervalMinutes": 480, "hours": 8, "minutes": 0,
				 "description": "a cada 8 horas e 0 minutos"},
				{"id": "2", "name": "Vitamin D", "intervalMinutes": 45, "hours": 0, "minutes": 45,
				 "description": "a cada 45 minutos"}
			]}`,
		},
		{
			id:             "empty",
			service:        &stubService{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"medications": [], "emptyMessage": "Nenhum medicamento adicionado ainda."}`,
		},
		{
			id:             "store failure",
			service:        &stubService{err: errors.New("unavailable")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "Não foi possível carregar os medicamentos."}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/medications", nil)
			rr := httptest.NewRecorder()

			New(testcase.service).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.JSONEq(t, testcase.expectedBody, rr.Body.String())
		})
	}
}
