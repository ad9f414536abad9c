package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/logger"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("no stored session found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Provider exposes the current session to the service layer. Lookups never
// fail hard: a missing or unreadable session yields empty strings, and it is
// the caller's job to treat that as "not authenticated".
type Provider interface {
	UserID() string
	AccessToken() string
	Email() string
}

// Store is a keyring-backed session Provider.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// UserID returns the stored user id, or "" when no session exists.
func (s *Store) UserID() string {
	return s.get(constants.KeyringUserID)
}

// AccessToken returns the stored bearer token, or "" when no session exists.
func (s *Store) AccessToken() string {
	return s.get(constants.KeyringAccessToken)
}

// Email returns the stored account email, or "" when no session exists.
func (s *Store) Email() string {
	return s.get(constants.KeyringEmail)
}

func (s *Store) get(key string) string {
	v, err := keyring.Get(constants.AppName, key)
	if err != nil {
		if err != keyring.ErrNotFound {
			logger.Warn("Keyring lookup failed", "key", key, "error", err)
		}
		return ""
	}
	return v
}

// IsAuthenticated reports whether both a user id and a token are stored.
func (s *Store) IsAuthenticated() bool {
	return s.UserID() != "" && s.AccessToken() != ""
}

// Login stores the session credentials in the OS keyring.
func (s *Store) Login(userID, accessToken, email string) error {
	if userID == "" {
		return errors.New("user id cannot be empty")
	}
	if accessToken == "" {
		return errors.New("access token cannot be empty")
	}

	if err := keyring.Set(constants.AppName, constants.KeyringUserID, userID); err != nil {
		return fmt.Errorf("failed to store user id in keyring: %w", err)
	}
	if err := keyring.Set(constants.AppName, constants.KeyringAccessToken, accessToken); err != nil {
		return fmt.Errorf("failed to store access token in keyring: %w", err)
	}
	if email != "" {
		if err := keyring.Set(constants.AppName, constants.KeyringEmail, email); err != nil {
			return fmt.Errorf("failed to store email in keyring: %w", err)
		}
	}
	return nil
}

// Logout removes all stored session credentials. Returns ErrNotFound when
// nothing was stored.
func (s *Store) Logout() error {
	found := false
	for _, key := range []string{constants.KeyringUserID, constants.KeyringAccessToken, constants.KeyringEmail} {
		err := keyring.Delete(constants.AppName, key)
		if err == nil {
			found = true
			continue
		}
		if err != keyring.ErrNotFound {
			return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
		}
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring works but holds nothing under that key.
	return err == nil || err == keyring.ErrNotFound
}
