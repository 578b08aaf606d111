// Command server runs the MSL backend: it wires configuration, storage,
// and services, then keeps the consistency sweep running until the process
// receives SIGINT or SIGTERM.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/medfield/msl-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("init application: %v", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		a.Log.Error("application stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
