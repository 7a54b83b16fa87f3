package storage

import (
	"context"
	"sync"
)

type FakeKeyValue struct {
	GetError error
	SetError error
	Values   map[string]string
	GetCalls []string
	SetCalls []string
	lock     sync.Mutex
}

func NewFakeKeyValue() *FakeKeyValue {
	return &FakeKeyValue{Values: make(map[string]string)}
}

func (s *FakeKeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.GetCalls = append(s.GetCalls, key)
	if s.GetError != nil {
		return "", false, s.GetError
	}
	value, ok := s.Values[key]
	return value, ok, nil
}

func (s *FakeKeyValue) Set(ctx context.Context, key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SetCalls = append(s.SetCalls, key)
	if s.SetError != nil {
		return s.SetError
	}
	s.Values[key] = value
	return nil
}
