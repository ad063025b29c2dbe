package main

import (
	"log"

	"github.com/dball/riveter/cmd/riveter/commands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("riveter: ")
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
