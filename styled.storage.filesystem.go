package styled

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FilesystemStorage stores each stylesheet version as a JSON file.
//
// Directory structure:
//
//	<root>/
//	  <sheet-name>/
//	    v1.json
//	    v2.json
type FilesystemStorage struct {
	mu     sync.RWMutex
	root   string
	closed bool
}

// FilesystemStorageDriver is the driver for creating FilesystemStorage instances.
type FilesystemStorageDriver struct{}

func init() {
	RegisterStorageDriver(StorageDriverNameFilesystem, &FilesystemStorageDriver{})
}

// Open creates a new FilesystemStorage instance.
// The connection string is the root directory path.
func (d *FilesystemStorageDriver) Open(connectionString string) (SheetStorage, error) {
	return NewFilesystemStorage(connectionString)
}

// NewFilesystemStorage creates a filesystem-based stylesheet storage.
// The root directory is created if it doesn't exist.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	if root == "" {
		return nil, &StorageError{Message: ErrMsgInvalidStorageRoot}
	}
	if err := os.MkdirAll(root, FilesystemDirPermissions); err != nil {
		return nil, &StorageError{Message: ErrMsgCreateStorageDir, Name: root, Cause: err}
	}
	return &FilesystemStorage{root: root}, nil
}

// Root returns the storage root directory.
func (s *FilesystemStorage) Root() string {
	return s.root
}

// Get retrieves the latest version of a stylesheet by name.
func (s *FilesystemStorage) Get(ctx context.Context, name string) (*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateSheetNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	versions, err := s.listVersionsInternal(name)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, NewSheetNotFoundError(name)
	}
	return s.loadSheet(name, versions[0])
}

// GetVersion retrieves a specific version of a stylesheet.
func (s *FilesystemStorage) GetVersion(ctx context.Context, name string, version int) (*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateSheetNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	return s.loadSheet(name, version)
}

// Save writes a stylesheet as a new version file.
func (s *FilesystemStorage) Save(ctx context.Context, sheet *StoredSheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSheetForSave(sheet); err != nil {
		return err
	}
	if err := validateSheetNameForFilesystem(sheet.Name); err != nil {
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

	sheetDir := filepath.Join(s.root, sheet.Name)
	if err := os.MkdirAll(sheetDir, FilesystemDirPermissions); err != nil {
		return &StorageError{Message: ErrMsgCreateStorageDir, Name: sheetDir, Cause: err}
	}

	versions, err := s.listVersionsInternal(sheet.Name)
	if err != nil {
		return err
	}
	nextVersion := 1
	if len(versions) > 0 {
		nextVersion = versions[0] + 1
	}

	now := time.Now()
	stored := copyStoredSheet(sheet)
	stored.ID = id
	stored.Version = nextVersion
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return &StorageError{Message: ErrMsgMarshalSheet, Name: sheet.Name, Cause: err}
	}
	filename := s.versionFile(sheet.Name, nextVersion)
	if err := os.WriteFile(filename, data, FilesystemFilePermissions); err != nil {
		return &StorageError{Message: ErrMsgWriteSheet, Name: filename, Cause: err}
	}

	sheet.ID = stored.ID
	sheet.Version = stored.Version
	sheet.CreatedAt = stored.CreatedAt
	sheet.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes all versions of a stylesheet by name.
func (s *FilesystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSheetNameForFilesystem(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	sheetDir := filepath.Join(s.root, name)
	if _, err := os.Stat(sheetDir); errors.Is(err, fs.ErrNotExist) {
		return NewSheetNotFoundError(name)
	}
	if err := os.RemoveAll(sheetDir); err != nil {
		return &StorageError{Message: ErrMsgDeleteSheet, Name: name, Cause: err}
	}
	return nil
}

// List returns the latest version of every stylesheet, ordered by name.
// Unreadable entries are skipped.
func (s *FilesystemStorage) List(ctx context.Context) ([]*StoredSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, &StorageError{Message: ErrMsgReadStorageDir, Cause: err}
	}

	results := make([]*StoredSheet, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versions, err := s.listVersionsInternal(entry.Name())
		if err != nil || len(versions) == 0 {
			continue
		}
		sheet, err := s.loadSheet(entry.Name(), versions[0])
		if err != nil {
			continue
		}
		results = append(results, sheet)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results, nil
}

// Exists checks if a stylesheet with the given name exists.
func (s *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateSheetNameForFilesystem(name); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	versions, err := s.listVersionsInternal(name)
	if err != nil {
		return false, err
	}
	return len(versions) > 0, nil
}

// ListVersions returns all version numbers for a stylesheet, newest first.
func (s *FilesystemStorage) ListVersions(ctx context.Context, name string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateSheetNameForFilesystem(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	return s.listVersionsInternal(name)
}

// Close marks the storage as closed.
func (s *FilesystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *FilesystemStorage) versionFile(name string, version int) string {
	return filepath.Join(s.root, name, FilesystemVersionPrefix+strconv.Itoa(version)+FilesystemVersionExt)
}

// listVersionsInternal lists version numbers for a stylesheet (no locking).
func (s *FilesystemStorage) listVersionsInternal(name string) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int{}, nil
		}
		return nil, &StorageError{Message: ErrMsgReadStorageDir, Name: name, Cause: err}
	}

	versions := []int{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if !strings.HasPrefix(filename, FilesystemVersionPrefix) || !strings.HasSuffix(filename, FilesystemVersionExt) {
			continue
		}
		digits := filename[len(FilesystemVersionPrefix) : len(filename)-len(FilesystemVersionExt)]
		version, err := strconv.Atoi(digits)
		if err != nil || version <= 0 {
			continue
		}
		versions = append(versions, version)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(versions)))
	return versions, nil
}

// loadSheet reads one version file (no locking).
func (s *FilesystemStorage) loadSheet(name string, version int) (*StoredSheet, error) {
	filename := s.versionFile(name, version)
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewStorageVersionNotFoundError(name, version)
		}
		return nil, &StorageError{Message: ErrMsgReadSheet, Name: filename, Cause: err}
	}

	var sheet StoredSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, &StorageError{Message: ErrMsgUnmarshalSheet, Name: filename, Cause: err}
	}
	return &sheet, nil
}

// validateSheetNameForFilesystem rejects names that could escape the root
// directory or are not valid file names.
func validateSheetNameForFilesystem(name string) error {
	if name == "" {
		return &StorageError{Message: ErrMsgInvalidSheetName}
	}
	if strings.Contains(name, "..") {
		return &StorageError{Message: ErrMsgPathTraversalDetected, Name: name}
	}
	if strings.ContainsAny(name, "/\\:*?\"<>|") {
		return &StorageError{Message: ErrMsgInvalidSheetName, Name: name}
	}
	return nil
}
