package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/czcustom/internal/errors"
)

// Settings are user-level preferences, independent of any repository.
type Settings struct {
	Language string `json:"language"`
	Editor   string `json:"editor,omitempty"`
	PathFile string `json:"path_file"`
}

const (
	settingsDirName  = ".czcustom"
	settingsFileName = "settings.json"
	defaultLang      = LangEN
)

// LoadSettings loads the settings file. path is either a .json file or a home
// directory holding .czcustom/settings.json. A missing file is created with
// defaults.
func LoadSettings(path string) (*Settings, error) {
	var settingsPath string

	if filepath.Ext(path) == ".json" {
		settingsPath = path
	} else {
		settingsDir := filepath.Join(path, settingsDirName)
		settingsPath = filepath.Join(settingsDir, settingsFileName)

		if _, err := os.Stat(settingsDir); os.IsNotExist(err) {
			if err := os.MkdirAll(settingsDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating settings directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return createDefaultSettings(settingsPath)
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("error decoding settings JSON: %w", err)
	}
	settings.PathFile = settingsPath

	if err := validateSettings(&settings); err != nil {
		return nil, fmt.Errorf("loaded settings are invalid: %w", err)
	}

	return &settings, nil
}

func createDefaultSettings(path string) (*Settings, error) {
	settings := &Settings{
		Language: defaultLang,
		PathFile: path,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating settings directory: %w", err)
	}

	if err := SaveSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// SaveSettings validates and writes settings back to their file.
func SaveSettings(settings *Settings) error {
	if err := validateSettings(settings); err != nil {
		return fmt.Errorf("settings to save are invalid: %w", err)
	}

	if settings.PathFile == "" {
		return errors.ErrSettings.WithContext("field", "path_file")
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	if err := os.WriteFile(settings.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}

	return nil
}

func validateSettings(settings *Settings) error {
	if settings.Language == "" {
		return errors.ErrSettings.WithContext("field", "language")
	}
	if !IsSupportedLanguage(settings.Language) {
		return errors.ErrSettings.WithContext("language", settings.Language)
	}
	return nil
}
