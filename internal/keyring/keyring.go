package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "saltpass"

// SavePassword stores a store encryption password in the OS keyring,
// keyed by the store file path. Only the storage password is ever cached;
// the master salt never touches the keyring.
func SavePassword(storePath string, password string) error {
	return keyring.Set(serviceName, storePath, password)
}

// GetPassword retrieves a cached store password from the OS keyring
func GetPassword(storePath string) (string, error) {
	return keyring.Get(serviceName, storePath)
}

// DeletePassword removes a cached store password from the OS keyring
func DeletePassword(storePath string) error {
	return keyring.Delete(serviceName, storePath)
}

// HasPassword checks if a password is cached for the given store
func HasPassword(storePath string) bool {
	_, err := keyring.Get(serviceName, storePath)
	return err == nil
}
