package main

import (
	"log"
	"os"

	"github.com/sofia-hackathon/registration/cmd/register/cli"
)

func main() {
	log.SetFlags(0)

	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
