// Command slovar is an interactive dictionary lookup client: it fetches
// definitions for Russian words from the remote lookup service and keeps a
// persisted favorites list.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("slovar: %v", err)
	}
}
