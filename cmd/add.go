package cmd

import (
	"fmt"
)

// Add stores a new feature in the catalog and saves it.
func Add(opts StoreOptions, name, feature, algoName, hint string) {
	session := NewSession(opts)
	defer session.Close()

	if err := session.AddEntry(name, feature, ParseAlgo(algoName), hint); err != nil {
		HandleError(err)
	}

	fmt.Printf("Feature '%s' added\n", name)
}
