package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ServiceCredentials is the token the worker presents to the admin API.
type ServiceCredentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// CredentialStore keeps service credentials in a mode-0600 file and is
// passed by reference to whatever component makes authenticated calls.
// No package-level state; callers own the lifecycle via Load/Save/Clear.
type CredentialStore struct {
	path string
	mu   sync.RWMutex
}

func NewCredentialStore(path string) (*CredentialStore, error) {
	if path == "" {
		return nil, fmt.Errorf("credential store path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create credential dir: %v", err)
	}
	return &CredentialStore{path: path}, nil
}

// Load returns the stored credentials, or nil when none are saved.
func (cs *CredentialStore) Load() (*ServiceCredentials, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	data, err := os.ReadFile(cs.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %v", err)
	}

	var creds ServiceCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials: %v", err)
	}
	return &creds, nil
}

func (cs *CredentialStore) Save(creds *ServiceCredentials) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %v", err)
	}
	if err := os.WriteFile(cs.path, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %v", err)
	}
	return nil
}

func (cs *CredentialStore) Clear() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := os.Remove(cs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credentials: %v", err)
	}
	return nil
}
