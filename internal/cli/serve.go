package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eyeqlabs/prescreen/internal/pipeline"
	"github.com/eyeqlabs/prescreen/internal/server"
)

var (
	serveAddr  string
	serveRPS   float64
	serveBurst int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Serve exposes the review pipeline as a JSON API:
- POST /api/analyze  analyzes submitted text
- GET  /api/products lists the corpus products
- GET  /healthz      reports server health

Requests are rate-limited per client address.

Example:
  prescreen serve
  prescreen serve --addr :9090 --rps 10`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().Float64Var(&serveRPS, "rps", 5, "allowed requests per second per client")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 10, "allowed request burst per client")
	serveCmd.Flags().StringVar(&corpusPath, "corpus", "", "approved-claim corpus YAML (default: built-in corpus)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Server.Addr = serveAddr
	cfg.Server.RequestsPerSecond = serveRPS
	cfg.Server.Burst = serveBurst

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)

	srv := server.New(p, cfg.Server)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Server stopped")
	return nil
}
