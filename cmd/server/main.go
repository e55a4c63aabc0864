// Command server runs the lexiday HTTP API.
package main

import (
	"context"
	"log"

	"github.com/nmoskvina/lexiday/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
