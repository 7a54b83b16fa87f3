package addmedication

import (
	"context"
	"errors"
	"fmt"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/core/services"
	schedulereminder "medreminder/internal/core/services/schedule_reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	store     *medication.FakeStore
	generator *medication.FakeIdentityGenerator
	notifier  *notification.FakeNotifier
	service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.store = medication.NewFakeStore()
	suite.generator = medication.NewFakeIdentityGenerator()
	suite.notifier = notification.NewFakeNotifier(notification.PermissionGranted)
	suite.service = New(
		suite.logger,
		suite.store,
		suite.generator,
		schedulereminder.New(suite.logger, suite.notifier, func() time.Time { return Now }),
	)
}

func TestAddMedicationService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestAddSuccess() {
	result, err := s.service.Run(context.Background(), Input{Name: "Aspirin", IntervalSpec: "01:30"})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("Aspirin", result.Medication.Name)
	assert.Equal(uint32(90), result.Medication.Interval.Minutes())
	assert.NotEmpty(result.Medication.ID)
	assert.True(result.ReminderScheduled())
	assert.True(Now.Add(90 * time.Minute).Equal(result.FireAt.Value))

	assert.Equal([]medication.Medication{result.Medication}, s.store.Medications)
	assert.Len(s.notifier.Scheduled, 1)
	assert.Equal(string(result.Medication.ID), s.notifier.Scheduled[0].MedicationID)
}

func (s *testSuite) TestAddFiveMinuteReminder() {
	result, err := s.service.Run(context.Background(), Input{Name: "Vitamin", IntervalSpec: "00:05"})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint32(5), result.Medication.Interval.Minutes())
	assert.Len(s.notifier.Scheduled, 1)
	assert.WithinDuration(Now.Add(5*time.Minute), s.notifier.Scheduled[0].FireAt, time.Second)
	assert.Equal("Está na hora de tomar Vitamin", s.notifier.Scheduled[0].Body)
}

func (s *testSuite) TestAddValidationError() {
	cases := []struct {
		id    string
		input Input
		err   error
	}{
		{id: "empty name", input: Input{Name: "", IntervalSpec: "01:00"}, err: medication.ErrFieldsRequired},
		{id: "empty interval", input: Input{Name: "Aspirin", IntervalSpec: ""}, err: medication.ErrFieldsRequired},
		{id: "letters", input: Input{Name: "Aspirin", IntervalSpec: "ab:00"}, err: medication.ErrInvalidInterval},
		{id: "no colon", input: Input{Name: "Aspirin", IntervalSpec: "0100"}, err: medication.ErrInvalidInterval},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			s.SetupTest()

			_, err := s.service.Run(context.Background(), testcase.input)

			assert := s.Require()
			assert.ErrorIs(err, testcase.err)
			assert.ErrorIs(err, medication.ErrValidation)
			assert.Empty(s.store.Medications)
			assert.Empty(s.notifier.Scheduled)
		})
	}
}

func (s *testSuite) TestAddPersistenceError() {
	s.store.AddError = fmt.Errorf("%w: disk is full", medication.ErrPersistence)

	_, err := s.service.Run(context.Background(), Input{Name: "Aspirin", IntervalSpec: "01:30"})

	assert := s.Require()
	assert.ErrorIs(err, medication.ErrPersistence)
	assert.Empty(s.store.Medications)
	assert.Empty(s.notifier.Scheduled)
}

func (s *testSuite) TestAddKeepsMedicationWhenSchedulingFails() {
	s.notifier.ScheduleError = errors.New("notifications unavailable")

	result, err := s.service.Run(context.Background(), Input{Name: "Aspirin", IntervalSpec: "01:30"})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.ReminderScheduled())
	assert.Len(s.store.Medications, 1)
	assert.Equal(result.Medication, s.store.Medications[0])
	assert.Equal(1, s.logger.CountByLevel(logging.WARNING))
}

func (s *testSuite) TestSequentialAddsKeepOrderAndUniqueIDs() {
	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		_, err := s.service.Run(context.Background(), Input{Name: name, IntervalSpec: "00:10"})
		s.Require().Nil(err)
	}

	assert := s.Require()
	medications, err := s.store.List(context.Background())
	assert.Nil(err)
	assert.Len(medications, len(names))
	ids := make(map[medication.ID]struct{})
	for ix, med := range medications {
		assert.Equal(names[ix], med.Name)
		ids[med.ID] = struct{}{}
	}
	assert.Len(ids, len(names))
}

func (s *testSuite) TestRateLimitKey() {
	s.Require().Equal("add_medication::10.0.0.1", Input{ClientKey: "10.0.0.1"}.GetRateLimitKey())
}
