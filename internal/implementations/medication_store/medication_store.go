package medicationstore

import (
	"context"
	"encoding/json"
	"fmt"
	e "medreminder/internal/core/domain/errors"
	"medreminder/internal/core/domain/medication"
	"medreminder/internal/core/domain/storage"
	"sync"
)

const DefaultKey = "@medicamentos"

// record is the serialized form of one medication.
type record struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IntervalMinutes uint32 `json:"intervalMinutes"`
}

// KeyValueStore keeps the whole collection as one JSON array under a single
// key. Every Add and Remove reads the full collection and writes it back.
// Calls on one KeyValueStore are serialized; processes sharing the same key
// are not coordinated and may lose each other's updates.
type KeyValueStore struct {
	kv   storage.KeyValue
	key  string
	lock sync.Mutex
}

func New(kv storage.KeyValue, key string) *KeyValueStore {
	if kv == nil {
		panic(e.NewNilArgumentError("kv"))
	}
	if key == "" {
		key = DefaultKey
	}
	return &KeyValueStore{kv: kv, key: key}
}

func (s *KeyValueStore) Add(ctx context.Context, m medication.Medication) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %w", medication.ErrValidation, err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	medications, err := s.read(ctx)
	if err != nil {
		return err
	}
	for _, existing := range medications {
		if existing.ID == m.ID {
			return fmt.Errorf("%w: %s", medication.ErrDuplicateID, m.ID)
		}
	}
	return s.write(ctx, append(medications, m))
}

func (s *KeyValueStore) List(ctx context.Context) ([]medication.Medication, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.read(ctx)
}

func (s *KeyValueStore) Remove(ctx context.Context, id medication.ID) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	medications, err := s.read(ctx)
	if err != nil {
		return err
	}
	filtered := make([]medication.Medication, 0, len(medications))
	for _, m := range medications {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	return s.write(ctx, filtered)
}

func (s *KeyValueStore) read(ctx context.Context) ([]medication.Medication, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", medication.ErrPersistence, s.key, err)
	}
	if !found {
		return []medication.Medication{}, nil
	}
	return decode(raw)
}

func (s *KeyValueStore) write(ctx context.Context, medications []medication.Medication) error {
	raw, err := encode(medications)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %w", medication.ErrPersistence, s.key, err)
	}
	return nil
}

func encode(medications []medication.Medication) (string, error) {
	records := make([]record, len(medications))
	for ix, m := range medications {
		records[ix] = record{
			ID:              string(m.ID),
			Name:            m.Name,
			IntervalMinutes: m.Interval.Minutes(),
		}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("%w: encode: %w", medication.ErrPersistence, err)
	}
	return string(raw), nil
}

func decode(raw string) ([]medication.Medication, error) {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", medication.ErrPersistence, err)
	}
	medications := make([]medication.Medication, len(records))
	for ix, r := range records {
		medications[ix] = medication.Medication{
			ID:       medication.ID(r.ID),
			Name:     r.Name,
			Interval: medication.IntervalFromMinutes(r.IntervalMinutes),
		}
	}
	return medications, nil
}
