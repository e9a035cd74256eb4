package styled

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SheetID is a unique identifier for a stored stylesheet version.
// Uses a prefixed random format (e.g., "sheet_6ByTSYmGzT2c").
type SheetID string

// SheetEntry is the rule set registered for one class.
type SheetEntry struct {
	Class string   `json:"class"`
	Rules []string `json:"rules"`
}

// StoredSheet is a compiled stylesheet persisted by a storage backend.
type StoredSheet struct {
	// ID is the unique identifier for this version.
	ID SheetID `json:"id"`

	// Name is the stylesheet name used for lookups.
	Name string `json:"name"`

	// Version is the version number (1, 2, 3, ...). Higher versions are newer.
	Version int `json:"version"`

	// Prefix is the class prefix of the sheet that produced the entries.
	Prefix string `json:"prefix"`

	// Entries holds the rules per class in insertion order.
	Entries []SheetEntry `json:"entries"`

	// Metadata contains arbitrary key-value pairs for user-defined data.
	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// CreatedBy identifies who created this version (optional).
	CreatedBy string `json:"created_by,omitempty"`
}

// Classes returns the class names of all entries.
func (s *StoredSheet) Classes() []string {
	classes := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		classes[i] = e.Class
	}
	return classes
}

// CSS returns the stylesheet text, one rule per line.
func (s *StoredSheet) CSS() string {
	var sb strings.Builder
	for _, e := range s.Entries {
		for _, rule := range e.Rules {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SheetStorage is the interface for pluggable stylesheet backends.
// Implementations must be safe for concurrent use.
type SheetStorage interface {
	// Get retrieves the latest version of a stylesheet by name.
	Get(ctx context.Context, name string) (*StoredSheet, error)

	// GetVersion retrieves a specific version of a stylesheet.
	GetVersion(ctx context.Context, name string, version int) (*StoredSheet, error)

	// Save stores a stylesheet as a new version. ID, Version, CreatedAt and
	// UpdatedAt are set by the storage implementation.
	Save(ctx context.Context, sheet *StoredSheet) error

	// Delete removes all versions of a stylesheet by name.
	Delete(ctx context.Context, name string) error

	// List returns the latest version of every stylesheet, ordered by name.
	List(ctx context.Context) ([]*StoredSheet, error)

	// Exists checks if a stylesheet with the given name exists.
	Exists(ctx context.Context, name string) (bool, error)

	// ListVersions returns all version numbers for a stylesheet, newest first.
	// Returns an empty slice if the stylesheet doesn't exist.
	ListVersions(ctx context.Context, name string) ([]int, error)

	// Close releases any resources held by the storage.
	Close() error
}

// StorageDriver is a factory for creating storage instances.
// Drivers register themselves during init().
type StorageDriver interface {
	// Open creates a new storage instance with the given connection string.
	// The format of the connection string is driver-specific.
	Open(connectionString string) (SheetStorage, error)
}

// Storage driver registry
var (
	storageDriversMu sync.RWMutex
	storageDrivers   = make(map[string]StorageDriver)
)

// RegisterStorageDriver registers a storage driver by name.
// Panics if driver is nil or a driver with the same name is already registered.
func RegisterStorageDriver(name string, driver StorageDriver) {
	storageDriversMu.Lock()
	defer storageDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilStorageDriver)
	}
	if _, exists := storageDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	storageDrivers[name] = driver
}

// OpenStorage opens a storage connection using the named driver.
//
//	storage, err := styled.OpenStorage("memory", "")
//	storage, err := styled.OpenStorage("filesystem", "/var/lib/styled")
//	storage, err := styled.OpenStorage("postgres", "postgres://localhost/styled?sslmode=disable")
func OpenStorage(driverName, connectionString string) (SheetStorage, error) {
	storageDriversMu.RLock()
	driver, ok := storageDrivers[driverName]
	storageDriversMu.RUnlock()

	if !ok {
		return nil, NewStorageDriverNotFoundError(driverName)
	}

	return driver.Open(connectionString)
}

// ListStorageDrivers returns the sorted names of all registered storage drivers.
func ListStorageDrivers() []string {
	storageDriversMu.RLock()
	defer storageDriversMu.RUnlock()

	names := make([]string, 0, len(storageDrivers))
	for name := range storageDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StorageError represents a storage-related error.
type StorageError struct {
	Message string
	Name    string
	Version int
	Cause   error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Name != "" && e.Version > 0 {
		msg += ": " + e.Name + " v" + strconv.Itoa(e.Version)
	} else if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageDriverNotFoundError creates an error for a missing storage driver.
func NewStorageDriverNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgStorageDriverNotFound, Name: name}
}

// NewSheetNotFoundError creates an error for a stylesheet missing from storage.
func NewSheetNotFoundError(name string) error {
	return &StorageError{Message: ErrMsgSheetNotFound, Name: name}
}

// NewStorageVersionNotFoundError creates an error for a missing version.
func NewStorageVersionNotFoundError(name string, version int) error {
	return &StorageError{Message: ErrMsgVersionNotFound, Name: name, Version: version}
}

// NewStorageClosedError creates an error for operations on closed storage.
func NewStorageClosedError() error {
	return &StorageError{Message: ErrMsgStorageClosed}
}

// IsSheetNotFound reports whether err is a not-found storage error.
func IsSheetNotFound(err error) bool {
	var se *StorageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Message == ErrMsgSheetNotFound || se.Message == ErrMsgVersionNotFound
}

func validateSheetForSave(sheet *StoredSheet) error {
	if sheet == nil {
		return &StorageError{Message: ErrMsgNilSheet}
	}
	if sheet.Name == "" {
		return &StorageError{Message: ErrMsgInvalidSheetName}
	}
	return nil
}

// generateSheetID returns a random, URL-safe stylesheet ID.
func generateSheetID() (SheetID, error) {
	b := make([]byte, SheetIDLength*3/4)
	if _, err := rand.Read(b); err != nil {
		return "", &StorageError{Message: ErrMsgGenerateID, Cause: err}
	}
	return SheetID(SheetIDPrefix + base64.RawURLEncoding.EncodeToString(b)), nil
}

// copyStoredSheet creates a deep copy of a StoredSheet.
func copyStoredSheet(sheet *StoredSheet) *StoredSheet {
	if sheet == nil {
		return nil
	}
	out := *sheet
	out.Entries = make([]SheetEntry, len(sheet.Entries))
	for i, e := range sheet.Entries {
		out.Entries[i] = SheetEntry{Class: e.Class, Rules: append([]string(nil), e.Rules...)}
	}
	if sheet.Metadata != nil {
		out.Metadata = make(map[string]string, len(sheet.Metadata))
		for k, v := range sheet.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}
