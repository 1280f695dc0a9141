// Command genhash prints the argon2id hash of a password, for seeding
// accounts or rotating credentials by hand.
package main

import (
	"fmt"
	"os"

	"github.com/mflath/TImesheets/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}

	hash, err := auth.NewHasher().Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "genhash:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
