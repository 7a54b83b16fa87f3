package listmedications

import (
	"context"
	"fmt"
	"medreminder/internal/core/domain/logging"
	"medreminder/internal/core/domain/medication"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListMedications(t *testing.T) {
	medications := []medication.Medication{
		{ID: "1", Name: "Aspirin", Interval: medication.IntervalFromMinutes(90)},
		{ID: "2", Name: "Vitamin", Interval: medication.IntervalFromMinutes(5)},
	}
	store := medication.NewFakeStore(medications...)
	service := New(logging.NewFakeLogger(), store)

	result, err := service.Run(context.Background(), Input{})

	assert.Nil(t, err)
	assert.Equal(t, medications, result.Medications)
}

func TestListMedicationsEmpty(t *testing.T) {
	service := New(logging.NewFakeLogger(), medication.NewFakeStore())

	result, err := service.Run(context.Background(), Input{})

	assert.Nil(t, err)
	assert.Empty(t, result.Medications)
}

func TestListMedicationsError(t *testing.T) {
	store := medication.NewFakeStore()
	store.ListError = fmt.Errorf("%w: corrupted", medication.ErrPersistence)
	logger := logging.NewFakeLogger()
	service := New(logger, store)

	_, err := service.Run(context.Background(), Input{})

	assert.ErrorIs(t, err, medication.ErrPersistence)
	assert.Equal(t, 1, logger.CountByLevel(logging.ERROR))
}

func TestListReflectsChangesBetweenCalls(t *testing.T) {
	store := medication.NewFakeStore()
	service := New(logging.NewFakeLogger(), store)

	first, err := service.Run(context.Background(), Input{})
	assert.Nil(t, err)
	assert.Empty(t, first.Medications)

	assert.Nil(t, store.Add(context.Background(), medication.Medication{ID: "1", Name: "Aspirin"}))

	second, err := service.Run(context.Background(), Input{})
	assert.Nil(t, err)
	assert.Len(t, second.Medications, 1)
}
