package main

import (
	"fmt"
	"os"

	"cartrack/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
