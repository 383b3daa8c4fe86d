package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"roster/internal/api"
	"roster/pkg/logging"
)

// servicesDir is the subdirectory of the config dir holding definitions.
const servicesDir = "services"

// Storage persists service definitions under a single configuration
// directory, one YAML file per service.
type Storage struct {
	mu         sync.RWMutex
	configPath string // custom config path; empty means the default user config dir
}

// NewStorage creates a Storage using the default configuration directory.
func NewStorage() *Storage {
	return &Storage{}
}

// NewStorageWithPath creates a Storage rooted at a custom config path.
func NewStorageWithPath(configPath string) *Storage {
	return &Storage{configPath: configPath}
}

// Save writes the record as a YAML definition file. The transient status is
// not persisted; it is re-derived by validation on load.
func (s *Storage) Save(record api.ServiceRecord) error {
	if record.Name == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targetDir, err := s.servicesPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", targetDir, err)
	}

	record.Status = api.ServiceStatus{}
	data, err := marshalDefinition(record)
	if err != nil {
		return fmt.Errorf("failed to marshal definition for %s: %w", record.Name, err)
	}

	filePath := filepath.Join(targetDir, sanitizeFilename(record.Name)+".yaml")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	logging.Info("Storage", "saved definition %s to %s", record.Name, filePath)
	return nil
}

// Load reads the named definition and parses it into a record.
func (s *Storage) Load(name string) (api.ServiceRecord, error) {
	if name == "" {
		return api.ServiceRecord{}, fmt.Errorf("service name cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	targetDir, err := s.servicesPath()
	if err != nil {
		return api.ServiceRecord{}, err
	}

	data, err := readDefinitionFile(targetDir, sanitizeFilename(name))
	if err != nil {
		if os.IsNotExist(err) {
			return api.ServiceRecord{}, api.NewDefinitionNotFoundError(name)
		}
		return api.ServiceRecord{}, err
	}

	record, err := ParseDefinition(data)
	if err != nil {
		return api.ServiceRecord{}, fmt.Errorf("failed to parse definition %s: %w", name, err)
	}
	return record, nil
}

// Delete removes the named definition file.
func (s *Storage) Delete(name string) error {
	if name == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targetDir, err := s.servicesPath()
	if err != nil {
		return err
	}

	base := filepath.Join(targetDir, sanitizeFilename(name))
	for _, ext := range []string{".yaml", ".yml"} {
		err := os.Remove(base + ext)
		if err == nil {
			logging.Info("Storage", "deleted definition %s", name)
			return nil
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete definition %s: %w", name, err)
		}
	}
	return api.NewDefinitionNotFoundError(name)
}

// List returns the names of all stored definitions, sorted. A missing
// services directory is an empty store, not an error.
func (s *Storage) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	targetDir, err := s.servicesPath()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// ServicesDir returns the directory definitions live in, for watchers.
func (s *Storage) ServicesDir() (string, error) {
	return s.servicesPath()
}

func (s *Storage) servicesPath() (string, error) {
	if s.configPath != "" {
		return filepath.Join(s.configPath, servicesDir), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, "roster", servicesDir), nil
}

// readDefinitionFile tries the .yaml then .yml extension for the base name.
func readDefinitionFile(dir, base string) ([]byte, error) {
	var lastErr error
	for _, ext := range []string{".yaml", ".yml"} {
		data, err := os.ReadFile(filepath.Join(dir, base+ext))
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// sanitizeFilename maps a service name onto a safe filename: path
// separators and other problematic characters become underscores, runs of
// underscores collapse, and an empty result falls back to "unnamed".
func sanitizeFilename(name string) string {
	sanitized := name
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", ".", " "} {
		sanitized = strings.ReplaceAll(sanitized, c, "_")
	}
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		sanitized = "unnamed"
	}
	return sanitized
}
