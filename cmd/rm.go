package cmd

import (
	"fmt"
)

// Remove deletes the feature at the given index and saves the catalog.
func Remove(opts StoreOptions, index int) {
	session := NewSession(opts)
	defer session.Close()

	removed, err := session.RemoveEntry(index)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Feature '%s' removed\n", removed.Name)
}
