package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/reda-h/wellness-companion/internal/client"
	"github.com/reda-h/wellness-companion/internal/client/cli"
	"github.com/reda-h/wellness-companion/internal/localstore"
)

func main() {
	serverAddr := os.Getenv("WELLNESS_SERVER")
	if serverAddr == "" {
		serverAddr = "http://localhost:5000"
	}

	storePath := os.Getenv("WELLNESS_STORE")
	if storePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dir := filepath.Join(home, ".wellness-companion")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		storePath = filepath.Join(dir, "local.db")
	}

	store, err := localstore.OpenSQLite(storePath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer store.Close()

	app := cli.NewApp(client.New(serverAddr), store, os.Stdin, os.Stdout)
	app.Run(context.Background())
}
