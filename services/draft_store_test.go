package services

import (
	"errors"
	"testing"
)

// memoryDraftStore is the kind of double the DraftStore interface exists
// for.
type memoryDraftStore struct {
	drafts map[string][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string][]byte)}
}

func (m *memoryDraftStore) Save(slot string, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.drafts[slot] = cp
	return nil
}

func (m *memoryDraftStore) Load(slot string) ([]byte, error) {
	payload, ok := m.drafts[slot]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return payload, nil
}

func (m *memoryDraftStore) Clear(slot string) error {
	delete(m.drafts, slot)
	return nil
}

var _ DraftStore = (*memoryDraftStore)(nil)

func TestDraftStoreRoundTrip(t *testing.T) {
	store := newMemoryDraftStore()
	payload := []byte(`{"child_name":"Ava","wish_description":"a short film"}`)

	if err := store.Save("kidReferralForm", payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("kidReferralForm")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Load returned %q, want the exact saved payload %q", got, payload)
	}
}

func TestDraftStoreOverwrite(t *testing.T) {
	store := newMemoryDraftStore()
	_ = store.Save("slot", []byte(`{"child_name":"A"}`))
	_ = store.Save("slot", []byte(`{"child_name":"Av"}`))

	got, err := store.Load("slot")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `{"child_name":"Av"}` {
		t.Errorf("latest save should win, got %q", got)
	}
}

func TestDraftStoreClear(t *testing.T) {
	store := newMemoryDraftStore()
	_ = store.Save("slot", []byte(`{}`))

	if err := store.Clear("slot"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load("slot"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("Load after Clear = %v, want ErrDraftNotFound", err)
	}

	// Clearing an absent slot is not an error.
	if err := store.Clear("never-saved"); err != nil {
		t.Errorf("Clear on missing slot: %v", err)
	}
}
