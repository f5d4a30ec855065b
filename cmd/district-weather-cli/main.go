package main

import (
	"context"
	"log"

	"hko-district-weather/internal/cli"
)

func main() {
	cmd := cli.New()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Printf("exec: %s\n", err)
	}
}
