package store

import "sync"

// Memory はマップに裏付けられたインメモリ実装です。テストや
// セッション単位の一時的なエンジンに使用します。
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory は空のインメモリストアを生成します。
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get は KeyValueStore 実装です。
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

// Set は KeyValueStore 実装です。
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[key] = copied
	return nil
}

// Delete は KeyValueStore 実装です。
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
