// Command hashpassword prints a bcrypt hash for OWNER_PASSWORD_HASH.
//
// Usage:
//
//	go run ./cmd/hashpassword 'my-password'
//	echo 'my-password' | go run ./cmd/hashpassword
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/inkprofit/backend/internal/integration/adapters"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	password, err := readPassword(os.Args[1:])
	if err != nil {
		slog.Error("Failed to read password", "error", err)
		os.Exit(1)
	}

	hash, err := adapters.NewPasswordService().HashPassword(password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}

	fmt.Printf("OWNER_PASSWORD_HASH='%s'\n", hash)
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return validatePassword(args[0])
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password given: %w", err)
	}
	return validatePassword(strings.TrimRight(line, "\r\n"))
}

func validatePassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return "", fmt.Errorf("password must be at most 72 bytes")
	}
	return password, nil
}
