package store

// Memory is an in-memory Store for tests. The Fail* switches inject
// failures so fail-open behavior in callers can be exercised.
type Memory struct {
	Data map[string]string

	// FailReads makes every Get fail.
	FailReads bool
	// FailWrites makes every Set/Delete fail.
	FailWrites bool
}

var _ Store = (*Memory)(nil)

// injectedError is returned when failure injection is enabled.
type injectedError struct{}

func (injectedError) Error() string { return "store: injected failure" }

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{Data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if m.FailReads {
		return "", false, injectedError{}
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.FailWrites {
		return injectedError{}
	}
	m.Data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	if m.FailWrites {
		return injectedError{}
	}
	delete(m.Data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
