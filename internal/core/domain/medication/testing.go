package medication

import (
	"context"
	"fmt"
	"sync"
)

type FakeStore struct {
	AddError    error
	ListError   error
	RemoveError error
	Medications []Medication
	Added       []Medication
	Removed     []ID
	lock        sync.Mutex
}

func NewFakeStore(medications ...Medication) *FakeStore {
	return &FakeStore{Medications: medications}
}

func (s *FakeStore) Add(ctx context.Context, m Medication) error {
	if s.AddError != nil {
		return s.AddError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, existing := range s.Medications {
		if existing.ID == m.ID {
			return ErrDuplicateID
		}
	}
	s.Medications = append(s.Medications, m)
	s.Added = append(s.Added, m)
	return nil
}

func (s *FakeStore) List(ctx context.Context) ([]Medication, error) {
	if s.ListError != nil {
		return nil, s.ListError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	medications := make([]Medication, len(s.Medications))
	copy(medications, s.Medications)
	return medications, nil
}

func (s *FakeStore) Remove(ctx context.Context, id ID) error {
	if s.RemoveError != nil {
		return s.RemoveError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Removed = append(s.Removed, id)
	filtered := s.Medications[:0]
	for _, m := range s.Medications {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	s.Medications = filtered
	return nil
}

type FakeIdentityGenerator struct {
	next int
	lock sync.Mutex
}

func NewFakeIdentityGenerator() *FakeIdentityGenerator {
	return &FakeIdentityGenerator{}
}

func (g *FakeIdentityGenerator) GenerateID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.next++
	return ID(fmt.Sprintf("medication-%d", g.next))
}
