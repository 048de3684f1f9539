package client

import (
	"encoding/json"
	"os"
	"sync"
)

// PrefStore is a small key-value store for UI preferences: last viewed page,
// the admin token, sidebar state. Contents are convenience state only, never
// authoritative data, so writes are best-effort.
type PrefStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryPrefs is the in-memory implementation used by default and in tests.
type MemoryPrefs struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: map[string]string{}}
}

func (p *MemoryPrefs) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *MemoryPrefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return nil
}

func (p *MemoryPrefs) Delete(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
	return nil
}

// FilePrefs persists preferences as a JSON file.
type FilePrefs struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func NewFilePrefs(path string) (*FilePrefs, error) {
	p := &FilePrefs{path: path, values: map[string]string{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *FilePrefs) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *FilePrefs) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return p.flush()
}

func (p *FilePrefs) Delete(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
	return p.flush()
}

func (p *FilePrefs) flush() error {
	data, err := json.MarshalIndent(p.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0644)
}
