package cmd

import (
	"fmt"
)

// List prints the stored features with their index, algorithm, hint and
// creation time.
func List(opts StoreOptions) {
	session := NewSession(opts)
	defer session.Close()

	entries := session.Entries()
	if len(entries) == 0 {
		fmt.Println("No features stored yet.")
		return
	}

	fmt.Printf("Store: %s\n\n", session.StorePath())
	for i, e := range entries {
		fmt.Printf("%d. %s (%s) [%s]\n", i, e.Name, e.Feature, e.Algorithm)
		if e.Hint != nil {
			fmt.Printf("   Hint: %s\n", *e.Hint)
		}
		fmt.Printf("   Created: %s\n", e.Created.Format("2006-01-02 15:04:05"))
	}
}
