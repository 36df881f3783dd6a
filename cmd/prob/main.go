package main

import (
	"log"
	"os"

	"github.com/BaptisteLefebvre/nondeterministic-and-probabilistic-programming/cmd/prob/commands"
	"github.com/joho/godotenv"
)

func main() {
	envfile := ".env"
	if os.Getenv("PROB_ENV") == "dev" {
		envfile = ".env.dev"
	}
	// The env file is optional for a CLI tool. Only complain when one
	// exists but cannot be loaded.
	if _, err := os.Stat(envfile); err == nil {
		if err := godotenv.Load(envfile); err != nil {
			log.Fatal("Error loading env file ", envfile, ": ", err)
		}
	}
	commands.Execute()
}
