package tooltip

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Prefs is a flat key/value store of typed preferences. Getters return def
// when the key is missing or holds a value of another type.
type Prefs interface {
	GetString(key, def string) string
	SetString(key, v string)
	GetInt(key string, def int) int
	SetInt(key string, v int)
	GetFloat(key string, def float64) float64
	SetFloat(key string, v float64)
	GetBool(key string, def bool) bool
	SetBool(key string, v bool)
	HasKey(key string) bool
	DeleteKey(key string)
}

// MemoryPrefs is an in-memory Prefs. The zero value is ready to use and safe
// for concurrent use.
type MemoryPrefs struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryPrefs returns an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]any)}
}

func (p *MemoryPrefs) get(key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *MemoryPrefs) set(key string, v any) {
	p.mu.Lock()
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[key] = v
	p.mu.Unlock()
}

func (p *MemoryPrefs) GetString(key, def string) string {
	if v, ok := p.get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func (p *MemoryPrefs) SetString(key, v string) { p.set(key, v) }

func (p *MemoryPrefs) GetInt(key string, def int) int {
	if v, ok := p.get(key); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return def
}

func (p *MemoryPrefs) SetInt(key string, v int) { p.set(key, v) }

// GetFloat also accepts integer values, which is how YAML decodes whole
// numbers such as 1.
func (p *MemoryPrefs) GetFloat(key string, def float64) float64 {
	if v, ok := p.get(key); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return def
}

func (p *MemoryPrefs) SetFloat(key string, v float64) { p.set(key, v) }

func (p *MemoryPrefs) GetBool(key string, def bool) bool {
	if v, ok := p.get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

func (p *MemoryPrefs) SetBool(key string, v bool) { p.set(key, v) }

func (p *MemoryPrefs) HasKey(key string) bool {
	_, ok := p.get(key)
	return ok
}

func (p *MemoryPrefs) DeleteKey(key string) {
	p.mu.Lock()
	delete(p.values, key)
	p.mu.Unlock()
}

// Keys returns every stored key in sorted order.
func (p *MemoryPrefs) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// replace swaps the whole value set.
func (p *MemoryPrefs) replace(values map[string]any) {
	p.mu.Lock()
	p.values = values
	p.mu.Unlock()
}

// snapshot returns a shallow copy of the value set.
func (p *MemoryPrefs) snapshot() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// FilePrefs is a MemoryPrefs backed by a YAML file. Changes are held in
// memory until Save.
type FilePrefs struct {
	MemoryPrefs
	path string
}

// OpenFilePrefs loads the YAML file at path. A missing file yields an empty
// store that Save will create.
func OpenFilePrefs(path string) (*FilePrefs, error) {
	p := &FilePrefs{path: path}
	if err := p.Load(); err != nil {
		return nil, err
	}
	return p, nil
}

// Path returns the backing file path.
func (p *FilePrefs) Path() string { return p.path }

// Load replaces the in-memory values with the file's contents.
func (p *FilePrefs) Load() error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		p.replace(make(map[string]any))
		return nil
	}
	if err != nil {
		return fmt.Errorf("tooltip: read prefs: %w", err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("tooltip: parse prefs %s: %w", p.path, err)
	}
	p.replace(values)
	Logger().Debug("prefs loaded", "path", p.path, "keys", len(values))
	return nil
}

// Save writes the in-memory values to the file, creating its directory.
func (p *FilePrefs) Save() error {
	data, err := yaml.Marshal(p.snapshot())
	if err != nil {
		return fmt.Errorf("tooltip: encode prefs: %w", err)
	}
	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("tooltip: create prefs dir: %w", err)
		}
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("tooltip: write prefs: %w", err)
	}
	return nil
}
