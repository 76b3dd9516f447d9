package cmd

import (
	"fmt"
	"os"

	"github.com/YanLien/SaltPass/internal/core"
	"github.com/YanLien/SaltPass/internal/keyring"
	"github.com/YanLien/SaltPass/internal/security"
	"github.com/YanLien/SaltPass/internal/storage"
)

func resolveStorePath(opts StoreOptions) (string, storage.Format) {
	format, err := storage.ParseFormat(opts.Format)
	if err != nil {
		HandleError(err)
	}
	path := opts.Path
	if path == "" {
		path, err = storage.DefaultPath(format, true)
		if err != nil {
			HandleError(err)
		}
	}
	return path, format
}

// KeyringSave caches the store encryption password in the OS keyring,
// after verifying it against the existing store.
func KeyringSave(opts StoreOptions) {
	path, format := resolveStorePath(opts)

	password, err := core.ReadPassword("Enter store password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer security.ClearBytes(password)

	// Verify the password decrypts the store before caching it. A store
	// that does not exist yet verifies trivially.
	store := storage.New(path, format, true)
	verify := make([]byte, len(password))
	copy(verify, password)
	store.SetPassword(security.NewSecret(verify))
	if _, err := store.Load(); err != nil {
		store.Close()
		HandleError(err)
	}
	store.Close()

	if err := keyring.SavePassword(path, string(password)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Store password saved to keyring")
}

// KeyringDelete removes the cached store password from the OS keyring.
func KeyringDelete(opts StoreOptions) {
	path, _ := resolveStorePath(opts)

	if err := keyring.DeletePassword(path); err != nil {
		fmt.Println("No password stored in keyring")
		return
	}

	fmt.Println("Store password removed from keyring")
}

// KeyringStatus reports whether a store password is cached in the keyring.
func KeyringStatus(opts StoreOptions) {
	path, _ := resolveStorePath(opts)

	if keyring.HasPassword(path) {
		fmt.Println("Store password: cached in keyring")
	} else {
		fmt.Println("Store password: not cached")
	}
}
