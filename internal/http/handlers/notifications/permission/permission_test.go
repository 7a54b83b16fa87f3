package permission

import (
	"errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	service "medreminder/internal/core/services/ensure_notification_permission"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionHandler(t *testing.T) {
	cases := []struct {
		id             string
		method         string
		checkOnly      bool
		status         notification.PermissionStatus
		grantOnRequest bool
		statusError    error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "check undetermined",
			method:         http.MethodGet,
			checkOnly:      true,
			status:         notification.PermissionUndetermined,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status": "undetermined", "requested": false}`,
		},
		{
			id:             "check granted",
			method:         http.MethodGet,
			checkOnly:      true,
			status:         notification.PermissionGranted,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status": "granted", "requested": false}`,
		},
		{
			id:             "request granted",
			method:         http.MethodPost,
			status:         notification.PermissionUndetermined,
			grantOnRequest: true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status": "granted", "requested": true}`,
		},
		{
			id:             "request denied",
			method:         http.MethodPost,
			status:         notification.PermissionUndetermined,
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error": "Você precisa conceder permissão para notificações."}`,
		},
		{
			id:             "status failure",
			method:         http.MethodPost,
			statusError:    errors.New("storage down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "Não foi possível verificar a permissão para notificações."}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			notifier := notification.NewFakeNotifier(testcase.status)
			notifier.GrantOnRequest = testcase.grantOnRequest
			notifier.StatusError = testcase.statusError
			handler := New(service.New(logging.NewFakeLogger(), notifier), testcase.checkOnly)
			req := httptest.NewRequest(testcase.method, "/notifications/permission", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.JSONEq(t, testcase.expectedBody, rr.Body.String())
		})
	}
}

func TestPermissionHandlerCheckOnlyDoesNotRequest(t *testing.T) {
	notifier := notification.NewFakeNotifier(notification.PermissionUndetermined)
	handler := New(service.New(logging.NewFakeLogger(), notifier), true)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notifications/permission", nil))

	assert.Equal(t, 0, notifier.RequestCalls)
}
