package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles export file organization and path management
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateKindOutputDir creates the directory holding one record kind's exports
func (om *OutputManager) CreateKindOutputDir(kind string) (string, error) {
	kindDir := filepath.Join(om.BaseOutputDir, filepath.Base(kind))

	// Create the directory if it doesn't exist
	err := os.MkdirAll(kindDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	return kindDir, nil
}

// GetOutputFilePath generates a full path for an exported file
func (om *OutputManager) GetOutputFilePath(kind, fileName string) (string, error) {
	kindDir, err := om.CreateKindOutputDir(kind)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(fileName)

	return filepath.Join(kindDir, cleanFileName), nil
}

// WriteJSON writes v as indented JSON to <base>/<kind>/<name>.json
func (om *OutputManager) WriteJSON(kind, name string, v interface{}) (string, error) {
	path, err := om.GetOutputFilePath(kind, name+".json")
	if err != nil {
		return "", err
	}
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(path, append(buf, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// GetFileType determines the file type based on extension
func (om *OutputManager) GetFileType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "unknown"
	}
}

// EnsureOutputDirExists ensures the base output directory exists
func (om *OutputManager) EnsureOutputDirExists() error {
	return os.MkdirAll(om.BaseOutputDir, 0755)
}
