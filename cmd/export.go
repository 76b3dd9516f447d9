package cmd

import (
	"fmt"
)

// Export prints the stored catalog as TOML, decrypting if needed. The
// stored file is left untouched.
func Export(opts StoreOptions) {
	session := NewSession(opts)
	defer session.Close()

	text, err := session.Export()
	if err != nil {
		HandleError(err)
	}

	fmt.Print(text)
}
