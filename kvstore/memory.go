package kvstore

// MemoryStore keeps encoded records in memory. Records go through the same
// JSON encoding as the persistent backends, so loaded values have the same
// types (numbers come back as float64).
type MemoryStore struct {
	items  map[string][]byte
	writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string][]byte{}}
}

func (s *MemoryStore) Load(target string) (Record, error) {
	data, ok := s.items[target]
	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}

func (s *MemoryStore) Save(target string, rec Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	s.items[target] = data
	s.writes++
	return nil
}

// Writes returns the number of successful Save calls.
func (s *MemoryStore) Writes() int {
	return s.writes
}
