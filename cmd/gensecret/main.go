package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Generates a random signing secret for deployments that do not want the
// built-in demo secret. Both issuer and verifier must load the same file.

func main() {
	const secretFile = "secret.key"
	if _, err := os.Stat(secretFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists. Refusing to overwrite.\n", secretFile)
		os.Exit(1)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating random secret: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(secretFile, []byte(hex.EncodeToString(secret)+"\n"), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", secretFile, err)
		os.Exit(1)
	}
	fmt.Printf("Signing secret written to %s\n", secretFile)
}
