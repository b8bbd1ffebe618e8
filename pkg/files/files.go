package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

const (
	BidgridDir   = ".bidgrid"
	EstimatesDir = "estimates"
	SettingsFile = "settings.yaml"
	CatalogFile  = "catalog.yaml"
)

func InitProjectStructure() error {
	dirs := []string{
		BidgridDir,
		filepath.Join(BidgridDir, EstimatesDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReadEstimate loads an estimate by filename (e.g. "kitchen.yaml").
func ReadEstimate(path string) (*models.Estimate, error) {
	absPath := filepath.Join(BidgridDir, EstimatesDir, path)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read estimate %s: %w", path, err)
	}

	var est models.Estimate
	if err := yaml.Unmarshal(content, &est); err != nil {
		return nil, fmt.Errorf("failed to parse estimate YAML %s: %w", path, err)
	}

	est.Path = path

	return &est, nil
}

// WriteEstimate saves an estimate, deriving the filename from its name
// when it has none yet.
func WriteEstimate(est *models.Estimate) error {
	if est.Path == "" {
		est.Path = SanitizeFileName(est.Name) + ".yaml"
	}

	absPath := filepath.Join(BidgridDir, EstimatesDir, est.Path)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for estimate: %w", err)
	}

	content, err := yaml.Marshal(est)
	if err != nil {
		return fmt.Errorf("failed to marshal estimate to YAML: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write estimate %s: %w", est.Path, err)
	}

	return nil
}

// ListEstimates returns the filenames of all stored estimates, sorted.
func ListEstimates() ([]string, error) {
	dir := filepath.Join(BidgridDir, EstimatesDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimates: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// DeleteEstimate removes a stored estimate by filename.
func DeleteEstimate(path string) error {
	absPath := filepath.Join(BidgridDir, EstimatesDir, path)
	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("failed to delete estimate %s: %w", path, err)
	}
	return nil
}

// ReadSettings loads settings, or defaults when no settings file
// exists yet.
func ReadSettings() (*models.Settings, error) {
	absPath := filepath.Join(BidgridDir, SettingsFile)

	content, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings saves settings to the project directory.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	absPath := filepath.Join(BidgridDir, SettingsFile)
	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// SanitizeFileName converts a user-provided name into a safe filename
func SanitizeFileName(name string) string {
	// Convert to lowercase and replace spaces with hyphens
	filename := strings.ToLower(name)
	filename = strings.ReplaceAll(filename, " ", "-")

	// Remove any characters that aren't alphanumeric or hyphens
	var cleanName strings.Builder
	for _, r := range filename {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			cleanName.WriteRune(r)
		}
	}

	result := cleanName.String()

	// Ensure the filename is not empty
	if result == "" {
		result = "untitled"
	}

	// Remove leading/trailing hyphens
	result = strings.Trim(result, "-")

	// Replace multiple consecutive hyphens with a single hyphen
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}

	return result
}
