// Command server starts the ODHF facility directory HTTP service.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Jessenahat/odhf-lode-mcp-server/internal/api"
	"github.com/Jessenahat/odhf-lode-mcp-server/internal/config"
	"github.com/Jessenahat/odhf-lode-mcp-server/internal/dataset"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	loader := dataset.NewLoader(cfg.Data.FacilityFile)
	server := api.NewServer(loader)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[Server] listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Server] %v", err)
	}
	log.Println("[Server] shutdown complete")
}
