package cmd

import (
	"fmt"
)

// Generate derives and prints the password for a stored feature (by
// index) or an ad-hoc identifier (--feature). The master salt is prompted
// for, held in memory only, and zeroized when the session closes.
func Generate(opts StoreOptions, index int, feature, algoName string, length int) {
	session := NewSession(opts)
	defer session.Close()

	session.SetSecret(ReadMasterSalt())

	var password string
	var err error
	var label string

	if feature != "" {
		label = feature
		algo := ParseAlgo(algoName)
		// Without an explicit --algo, a stored entry for the identifier
		// decides the algorithm, so regeneration matches what was added.
		if algoName == "" {
			if i := session.FindFeature(feature); i >= 0 {
				algo = session.Entries()[i].Algorithm
			}
		}
		password, err = session.Generate(feature, algo, length)
	} else {
		entries := session.Entries()
		if index < 0 || index >= len(entries) {
			fmt.Println("No feature selected. Use an index from 'saltpass ls' or pass --feature.")
			return
		}
		label = fmt.Sprintf("%s (%s)", entries[index].Name, entries[index].Feature)
		password, err = session.GenerateEntry(index, length)
	}
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Feature:  %s\n", label)
	fmt.Printf("Password: %s\n", password)
	fmt.Printf("Length:   %d\n", len(password))
}

// DefaultLength is the password length used when --length is not given.
const DefaultLength = 16
