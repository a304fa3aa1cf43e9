// Package auth acquires and caches the Literal session token.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conatus/literal-tools/filesystem"
	"github.com/conatus/literal-tools/where"
	"github.com/zalando/go-keyring"
)

// ErrNoToken is returned by a Store holding no token.
var ErrNoToken = errors.New("no cached session token")

// Store persists at most one session token. Save overwrites any previous token.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// Store kinds accepted by NewStore.
const (
	StoreFile    = "file"
	StoreKeyring = "keyring"
)

// NewStore returns the store selected by kind.
func NewStore(kind string) (Store, error) {
	switch kind {
	case StoreFile, "":
		return NewFileStore(where.Token()), nil
	case StoreKeyring:
		return NewKeyringStore(), nil
	default:
		return nil, fmt.Errorf("unknown token store %q, expected %s or %s", kind, StoreFile, StoreKeyring)
	}
}

// FileStore keeps the token as plain text in a single owner-readable file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the token file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the cached token. A JSON document of the form {"token": "..."} is accepted as well.
func (s *FileStore) Load() (string, error) {
	data, err := filesystem.API().ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := parseToken(data)
	if token == "" {
		return "", ErrNoToken
	}

	return token, nil
}

// Save overwrites the token file with token.
func (s *FileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if err := filesystem.WritePrivate(s.path, []byte(token+"\n")); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Delete removes the token file. A missing file is not an error.
func (s *FileStore) Delete() error {
	err := filesystem.API().Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func parseToken(data []byte) string {
	text := strings.TrimSpace(string(data))
	if !strings.HasPrefix(text, "{") {
		return text
	}

	var legacy struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(text), &legacy); err != nil {
		return ""
	}
	return strings.TrimSpace(legacy.Token)
}

const (
	keyringService = "literal-cli"
	keyringUser    = "session-token"
)

// KeyringStore keeps the token in the system keyring.
type KeyringStore struct{}

// NewKeyringStore returns a KeyringStore.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// Load retrieves the token from the system keyring.
func (KeyringStore) Load() (string, error) {
	token, err := keyring.Get(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return token, nil
}

// Save persists the token to the system keyring.
func (KeyringStore) Save(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return keyring.Set(keyringService, keyringUser, token)
}

// Delete removes the token from the system keyring.
func (KeyringStore) Delete() error {
	err := keyring.Delete(keyringService, keyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
