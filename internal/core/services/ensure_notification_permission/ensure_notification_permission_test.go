package ensurenotificationpermission

import (
	"context"
	"errors"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/notification"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsurePermission(t *testing.T) {
	cases := []struct {
		id               string
		status           notification.PermissionStatus
		grantOnRequest   bool
		checkOnly        bool
		expectedStatus   notification.PermissionStatus
		expectedRequests int
		expectedErr      error
	}{
		{
			id:             "already granted",
			status:         notification.PermissionGranted,
			expectedStatus: notification.PermissionGranted,
		},
		{
			id:               "granted on request",
			status:           notification.PermissionUndetermined,
			grantOnRequest:   true,
			expectedStatus:   notification.PermissionGranted,
			expectedRequests: 1,
		},
		{
			id:               "denied on request",
			status:           notification.PermissionUndetermined,
			expectedStatus:   notification.PermissionDenied,
			expectedRequests: 1,
			expectedErr:      notification.ErrPermissionDenied,
		},
		{
			id:               "previously denied is requested again",
			status:           notification.PermissionDenied,
			grantOnRequest:   true,
			expectedStatus:   notification.PermissionGranted,
			expectedRequests: 1,
		},
		{
			id:             "check only",
			status:         notification.PermissionUndetermined,
			checkOnly:      true,
			expectedStatus: notification.PermissionUndetermined,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			notifier := notification.NewFakeNotifier(testcase.status)
			notifier.GrantOnRequest = testcase.grantOnRequest
			service := New(logging.NewFakeLogger(), notifier)

			result, err := service.Run(context.Background(), Input{CheckOnly: testcase.checkOnly})

			if testcase.expectedErr != nil {
				assert.ErrorIs(t, err, testcase.expectedErr)
			} else {
				assert.Nil(t, err)
			}
			assert.Equal(t, testcase.expectedStatus, result.Status)
			assert.Equal(t, testcase.expectedRequests, notifier.RequestCalls)
			assert.Equal(t, testcase.expectedRequests > 0, result.Requested)
		})
	}
}

func TestEnsurePermissionStatusError(t *testing.T) {
	notifier := notification.NewFakeNotifier(notification.PermissionGranted)
	notifier.StatusError = errors.New("storage is down")
	service := New(logging.NewFakeLogger(), notifier)

	_, err := service.Run(context.Background(), Input{})

	assert.ErrorIs(t, err, notifier.StatusError)
	assert.Equal(t, 0, notifier.RequestCalls)
}
