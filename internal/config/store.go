package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "slidecast"
	deckFile = "deck.yaml"
	logFile  = "slidecast.log"
)

//go:embed default_deck.yaml
var defaultDeckYAML []byte

var (
	// Parsed embedded deck (loaded lazily)
	defaultDeck     *Deck
	defaultDeckOnce sync.Once
	defaultDeckErr  error

	// Mutex for file writes
	fileMutex sync.Mutex
)

// ErrDeckExists is returned by WriteDefaultDeck when the target exists and
// force is not set.
var ErrDeckExists = errors.New("deck file already exists")

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/slidecast or $HOME/.config/slidecast
//   - macOS: $HOME/.config/slidecast
//   - Windows: %LOCALAPPDATA%\slidecast
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetDeckPath returns the path of the user deck in the configuration
// directory. The file may not exist.
func GetDeckPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, deckFile), nil
}

// GetLogPath returns the default log file path.
func GetLogPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

// ResolveDeckPath returns the deck to load: the flag value, then the
// environment value, then the user deck if present. An empty result means
// the embedded default deck.
func ResolveDeckPath(flagPath, envPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if envPath != "" {
		return envPath, nil
	}

	userDeck, err := GetDeckPath()
	if err != nil {
		return "", nil
	}
	if _, err := os.Stat(userDeck); err == nil {
		return userDeck, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat deck file: %w", err)
	}
	return "", nil
}

// DefaultDeck returns the embedded deck. The returned deck is shared and
// must not be modified.
func DefaultDeck() (*Deck, error) {
	defaultDeckOnce.Do(func() {
		defaultDeck, defaultDeckErr = ParseDeck(defaultDeckYAML)
	})
	return defaultDeck, defaultDeckErr
}

// DefaultDeckYAML returns a copy of the embedded deck source.
func DefaultDeckYAML() []byte {
	return bytes.Clone(defaultDeckYAML)
}

// LoadDeck reads and validates the deck at path. An empty path loads the
// embedded default.
func LoadDeck(path string) (*Deck, error) {
	if path == "" {
		return DefaultDeck()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	deck, err := ParseDeck(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return deck, nil
}

// ParseDeck decodes and validates a deck. Unknown fields are rejected.
func ParseDeck(data []byte) (*Deck, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var deck Deck
	if err := dec.Decode(&deck); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return &deck, nil
}

// WriteDefaultDeck writes the embedded deck to path, creating parent
// directories. An existing file is only replaced when force is set. The
// write is atomic.
func WriteDefaultDeck(path string, force bool) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrDeckExists)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, defaultDeckYAML, 0600); err != nil {
		return fmt.Errorf("failed to write temporary deck file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save deck file: %w", err)
	}
	return nil
}
