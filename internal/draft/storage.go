package draft

// a single process-wide mutable slot keyed by string, the way browser
// local storage behaves. Get reports presence separately from failure so
// "no entry" never looks like a broken backend.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// in-memory Storage for tests and ephemeral sessions
type MemStorage struct {
	entries map[string]string
}

func NewMemStorage() *MemStorage {
	return &MemStorage{entries: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, bool, error) {
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *MemStorage) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *MemStorage) Remove(key string) error {
	delete(m.entries, key)
	return nil
}
