package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/YanLien/SaltPass/internal/catalog"
	"github.com/YanLien/SaltPass/internal/core"
	"github.com/YanLien/SaltPass/internal/crypto"
	"github.com/YanLien/SaltPass/internal/derive"
	"github.com/YanLien/SaltPass/internal/keyring"
	"github.com/YanLien/SaltPass/internal/security"
	"github.com/YanLien/SaltPass/internal/storage"
)

// StoreOptions carries the store-selection flags shared by every command.
type StoreOptions struct {
	Format    string // "json" or "toml"
	Encrypted bool
	Path      string // optional override of the default path
}

// OpenStore resolves the flags into a store. For encrypted stores the
// password is looked up in order: environment, OS keyring, prompt.
func OpenStore(opts StoreOptions) *storage.Store {
	format, err := storage.ParseFormat(opts.Format)
	if err != nil {
		HandleError(err)
	}

	path := opts.Path
	if path == "" {
		path, err = storage.DefaultPath(format, opts.Encrypted)
		if err != nil {
			HandleError(err)
		}
	}

	store := storage.New(path, format, opts.Encrypted)
	if opts.Encrypted {
		store.SetPassword(security.NewSecret(GetStorePassword(path)))
	}
	return store
}

// GetStorePassword retrieves the store encryption password from the
// environment, the OS keyring, or an interactive prompt, in that order.
func GetStorePassword(storePath string) []byte {
	if password := core.PasswordFromEnv(); password != nil {
		return password
	}

	if cached, err := keyring.GetPassword(storePath); err == nil {
		return []byte(cached)
	}

	password, err := core.ReadPassword("Enter store password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// NewSession opens the store and loads the catalog, exiting on failure.
// The caller must Close the returned session.
func NewSession(opts StoreOptions) *core.Session {
	store := OpenStore(opts)
	session, err := core.NewSession(store)
	if err != nil {
		store.Close()
		HandleError(err)
	}
	return session
}

// ReadMasterSalt prompts for the master salt and wraps it in a zeroizing
// buffer. The salt exists only in memory and is never persisted.
func ReadMasterSalt() *security.Secret {
	salt, err := core.ReadPassword("Enter your master salt (hidden): ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if len(salt) == 0 {
		fmt.Fprintln(os.Stderr, "Error: master salt must not be empty")
		os.Exit(1)
	}
	return security.NewSecret(salt)
}

// ParseAlgo resolves the --algo flag, defaulting to HmacSha256.
func ParseAlgo(name string) derive.Algorithm {
	if name == "" {
		return derive.HmacSha256
	}
	algo, err := derive.ParseAlgorithm(name)
	if err != nil {
		HandleError(err)
	}
	return algo
}

// HandleError handles common errors consistently
func HandleError(err error) {
	switch {
	case errors.Is(err, crypto.ErrAuthFailed):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "The store could not be decrypted. Check the password, or whether the file was modified.\n")
	case errors.Is(err, storage.ErrPasswordRequired):
		fmt.Fprintf(os.Stderr, "Error: this store is encrypted and no password was provided\n")
		fmt.Fprintf(os.Stderr, "Set %s or use an interactive terminal\n", core.PasswordEnvVar)
	case errors.Is(err, storage.ErrStoreNotFound):
		fmt.Fprintf(os.Stderr, "Error: no store file exists yet\n")
		fmt.Fprintf(os.Stderr, "Use 'saltpass add' to create the first feature\n")
	case errors.Is(err, catalog.ErrIndexOutOfRange):
		fmt.Fprintf(os.Stderr, "Error: no feature with that index\n")
		fmt.Fprintf(os.Stderr, "Use 'saltpass ls' to see stored features\n")
	case errors.Is(err, derive.ErrUnknownAlgorithm):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Supported: HmacSha256, Argon2i, Argon2id, Pbkdf2, Scrypt\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
