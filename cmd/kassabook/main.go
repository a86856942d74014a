package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kassabook-dev/kassabook/internal/commands"
)

func main() {
	// Optional .env for KASSABOOK_CONFIG / KASSABOOK_LEDGER overrides.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
