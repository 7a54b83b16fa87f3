package medicationstore

import (
	"context"
	"errors"
	"fmt"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/storage"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	kv    *storage.FakeKeyValue
	store *KeyValueStore
}

func (suite *testSuite) SetupTest() {
	suite.kv = storage.NewFakeKeyValue()
	suite.store = New(suite.kv, DefaultKey)
}

func TestKeyValueStore(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func newMedication(id string, name string, minutes uint32) medication.Medication {
	return medication.Medication{
		ID:       medication.ID(id),
		Name:     name,
		Interval: medication.IntervalFromMinutes(minutes),
	}
}

func (s *testSuite) TestListWithoutStoredData() {
	medications, err := s.store.List(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.NotNil(medications)
	assert.Empty(medications)
	assert.Empty(s.kv.SetCalls)
}

func (s *testSuite) TestAddThenListKeepsInsertionOrder() {
	ctx := context.Background()
	expected := []medication.Medication{
		newMedication("1", "Aspirin", 90),
		newMedication("2", "Vitamin", 5),
		newMedication("3", "Aspirin", 720),
	}
	for _, m := range expected {
		s.Require().Nil(s.store.Add(ctx, m))
	}

	medications, err := s.store.List(ctx)

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(expected, medications)
}

func (s *testSuite) TestSerializedForm() {
	s.Require().Nil(s.store.Add(context.Background(), newMedication("abc", "Aspirin", 90)))

	s.Require().JSONEq(
		`[{"id":"abc","name":"Aspirin","intervalMinutes":90}]`,
		s.kv.Values[DefaultKey],
	)
}

func (s *testSuite) TestReadsExistingCollection() {
	s.kv.Values[DefaultKey] = `[{"id":"x","name":"Iron","intervalMinutes":61}]`

	medications, err := s.store.List(context.Background())

	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]medication.Medication{newMedication("x", "Iron", 61)}, medications)
	assert.Equal(uint32(1), medications[0].Interval.Hours())
	assert.Equal(uint32(1), medications[0].Interval.RemainderMinutes())
}

func (s *testSuite) TestAddRejectsDuplicateID() {
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, newMedication("1", "Aspirin", 90)))

	err := s.store.Add(ctx, newMedication("1", "Other", 10))

	assert := s.Require()
	assert.ErrorIs(err, medication.ErrDuplicateID)
	assert.ErrorIs(err, medication.ErrPersistence)
	medications, _ := s.store.List(ctx)
	assert.Len(medications, 1)
}

func (s *testSuite) TestAddRejectsInvalidMedication() {
	err := s.store.Add(context.Background(), newMedication("", "Aspirin", 90))

	s.Require().ErrorIs(err, medication.ErrValidation)
	s.Require().Empty(s.kv.GetCalls)
}

func (s *testSuite) TestAddReadError() {
	s.kv.GetError = errors.New("connection refused")

	err := s.store.Add(context.Background(), newMedication("1", "Aspirin", 90))

	assert := s.Require()
	assert.ErrorIs(err, medication.ErrPersistence)
	assert.ErrorIs(err, s.kv.GetError)
	assert.Empty(s.kv.SetCalls)
}

func (s *testSuite) TestAddWriteError() {
	s.kv.SetError = errors.New("read-only replica")

	err := s.store.Add(context.Background(), newMedication("1", "Aspirin", 90))

	assert := s.Require()
	assert.ErrorIs(err, medication.ErrPersistence)
	s.kv.SetError = nil
	medications, err := s.store.List(context.Background())
	assert.Nil(err)
	assert.Empty(medications)
}

func (s *testSuite) TestCorruptedCollection() {
	s.kv.Values[DefaultKey] = `{not json`

	_, err := s.store.List(context.Background())
	s.Require().ErrorIs(err, medication.ErrPersistence)

	err = s.store.Add(context.Background(), newMedication("1", "Aspirin", 90))
	s.Require().ErrorIs(err, medication.ErrPersistence)
	s.Require().Equal(`{not json`, s.kv.Values[DefaultKey])
}

func (s *testSuite) TestRemove() {
	ctx := context.Background()
	for _, m := range []medication.Medication{
		newMedication("1", "A", 1),
		newMedication("2", "B", 2),
		newMedication("3", "C", 3),
	} {
		s.Require().Nil(s.store.Add(ctx, m))
	}

	assert := s.Require()
	assert.Nil(s.store.Remove(ctx, "2"))

	medications, err := s.store.List(ctx)
	assert.Nil(err)
	assert.Equal([]medication.Medication{newMedication("1", "A", 1), newMedication("3", "C", 3)}, medications)
}

func (s *testSuite) TestRemoveDropsEveryMatchingRecord() {
	s.kv.Values[DefaultKey] = `[
		{"id":"1","name":"A","intervalMinutes":1},
		{"id":"2","name":"B","intervalMinutes":2},
		{"id":"1","name":"C","intervalMinutes":3}
	]`

	assert := s.Require()
	assert.Nil(s.store.Remove(context.Background(), "1"))

	medications, err := s.store.List(context.Background())
	assert.Nil(err)
	assert.Equal([]medication.Medication{newMedication("2", "B", 2)}, medications)
}

func (s *testSuite) TestRemoveUnknownIDStillWrites() {
	ctx := context.Background()
	s.Require().Nil(s.store.Add(ctx, newMedication("1", "A", 1)))
	before := s.kv.Values[DefaultKey]
	setCalls := len(s.kv.SetCalls)

	assert := s.Require()
	assert.Nil(s.store.Remove(ctx, "missing"))
	assert.Equal(setCalls+1, len(s.kv.SetCalls))
	assert.JSONEq(before, s.kv.Values[DefaultKey])
}

func (s *testSuite) TestRemoveOnEmptyStorage() {
	assert := s.Require()
	assert.Nil(s.store.Remove(context.Background(), "missing"))
	assert.JSONEq(`[]`, s.kv.Values[DefaultKey])
}

func (s *testSuite) TestRemoveErrors() {
	s.kv.Values[DefaultKey] = `[{"id":"1","name":"A","intervalMinutes":1}]`
	s.kv.SetError = errors.New("timeout")

	err := s.store.Remove(context.Background(), "1")

	assert := s.Require()
	assert.ErrorIs(err, medication.ErrPersistence)
	assert.Equal(`[{"id":"1","name":"A","intervalMinutes":1}]`, s.kv.Values[DefaultKey])
}

func (s *testSuite) TestConcurrentAddsAreNotLost() {
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Nil(s.store.Add(ctx, newMedication(fmt.Sprintf("id-%d", i), "A", uint32(i))))
		}(i)
	}
	wg.Wait()

	medications, err := s.store.List(ctx)
	s.Require().Nil(err)
	s.Require().Len(medications, 50)
}

func (s *testSuite) TestUsesConfiguredKey() {
	store := New(s.kv, "@other")
	s.Require().Nil(store.Add(context.Background(), newMedication("1", "A", 1)))

	_, found := s.kv.Values["@other"]
	s.Require().True(found)
	_, found = s.kv.Values[DefaultKey]
	s.Require().False(found)
}
