/*
main.go - Application entry point

PURPOSE:
  Starts the bakery simulation server. Sessions live in memory; each one
  runs its scheduled work (bake progress, passive income, transient
  expiries) on real wall-clock timers.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Build the session registry over the ticker scheduler
  3. Configure HTTP router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -seed    Randomness seed, 0 means time-seeded (default: 0)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close every session, cancelling its scheduled tasks
  4. Exit

EXAMPLES:
  # Run on a different port
  ./server -port=3000

  # Reproducible sessions
  ./server -seed=42

SEE ALSO:
  - api/server.go: Router configuration
  - bakery/engine.go: The session engine
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/bakery-engine/api"
	"github.com/warp/bakery-engine/bakery"
	"github.com/warp/bakery-engine/sched"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	seed := flag.Int64("seed", 0, "randomness seed (0 = time-seeded)")
	flag.Parse()

	registry := api.NewRegistry(func() *bakery.Engine {
		var rng bakery.Rand
		if *seed != 0 {
			rng = rand.New(rand.NewSource(*seed))
		}
		return bakery.New(bakery.DefaultConfig(), sched.NewTicker(), rng)
	})

	handler := api.NewHandler(registry)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🥖 Bakery server starting on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	registry.CloseAll()
	log.Println("Server stopped")
}
