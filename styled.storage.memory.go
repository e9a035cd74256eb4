package styled

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of SheetStorage.
// It is primarily intended for testing and development.
type MemoryStorage struct {
	mu     sync.RWMutex
	sheets map[string][]*StoredSheet // name -> versions, newest first
	closed bool
}

// MemoryStorageDriver is the driver for creating MemoryStorage instances.
type MemoryStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameMemory, &MemoryStorageDriver{})
}

// Open creates a new MemoryStorage instance.
// The connection string is ignored.
func (d *MemoryStorageDriver) Open(connectionString string) (SheetStorage, error) {
	return NewMemoryStorage(), nil
}

// NewMemoryStorage creates a new in-memory stylesheet storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sheets: make(map[string][]*StoredSheet),
	}
}

// Get retrieves the latest version of a stylesheet by name.
func (s *MemoryStorage) Get(ctx context.Context, name string) (*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	versions, ok := s.sheets[name]
	if !ok || len(versions) == 0 {
		return nil, NewSheetNotFoundError(name)
	}
	return copyStoredSheet(versions[0]), nil
}

// GetVersion retrieves a specific version of a stylesheet.
func (s *MemoryStorage) GetVersion(ctx context.Context, name string, version int) (*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	for _, sheet := range s.sheets[name] {
		if sheet.Version == version {
			return copyStoredSheet(sheet), nil
		}
	}
	return nil, NewStorageVersionNotFoundError(name, version)
}

// Save stores a stylesheet as a new version.
func (s *MemoryStorage) Save(ctx context.Context, sheet *StoredSheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSheetForSave(sheet); err != nil {
		return err
	}

	id, err := generateSheetID()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	versions := s.sheets[sheet.Name]
	nextVersion := 1
	if len(versions) > 0 {
		nextVersion = versions[0].Version + 1
	}

	now := time.Now()
	stored := copyStoredSheet(sheet)
	stored.ID = id
	stored.Version = nextVersion
	stored.CreatedAt = now
	stored.UpdatedAt = now

	// Update input with generated values
	sheet.ID = stored.ID
	sheet.Version = stored.Version
	sheet.CreatedAt = stored.CreatedAt
	sheet.UpdatedAt = stored.UpdatedAt

	s.sheets[sheet.Name] = append([]*StoredSheet{stored}, versions...)
	return nil
}

// Delete removes all versions of a stylesheet by name.
func (s *MemoryStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	if _, ok := s.sheets[name]; !ok {
		return NewSheetNotFoundError(name)
	}
	delete(s.sheets, name)
	return nil
}

// List returns the latest version of every stylesheet, ordered by name.
func (s *MemoryStorage) List(ctx context.Context) ([]*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	results := make([]*StoredSheet, 0, len(s.sheets))
	for _, versions := range s.sheets {
		if len(versions) > 0 {
			results = append(results, copyStoredSheet(versions[0]))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

// Exists checks if a stylesheet with the given name exists.
func (s *MemoryStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	return len(s.sheets[name]) > 0, nil
}

// ListVersions returns all version numbers for a stylesheet, newest first.
func (s *MemoryStorage) ListVersions(ctx context.Context, name string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	versions := s.sheets[name]
	result := make([]int, len(versions))
	for i, sheet := range versions {
		result[i] = sheet.Version
	}
	return result, nil
}

// Close marks the storage as closed and drops its contents.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.sheets = nil
	return nil
}
