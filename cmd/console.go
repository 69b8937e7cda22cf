package cmd

import (
	"context"
	"log"

	"seat-booking/internal/adaptor"
)

// ConsoleApp runs the interactive loop until the operator exits.
func ConsoleApp(console *adaptor.Console) {
	if err := console.Run(context.Background()); err != nil {
		log.Fatal("Console error:", err)
	}
}
