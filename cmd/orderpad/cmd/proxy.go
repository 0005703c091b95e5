package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"orderpad/internal/proxy"
)

var (
	proxyListen   string
	proxyUpstream string
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Serve the relay between the grid and the spreadsheet service",
	Long: `proxy runs the stateless relay the grid talks to. It forwards GET and
POST requests verbatim to the spreadsheet-backed web service, answers
CORS preflights, and passes upstream statuses through untouched.

The upstream URL comes from --upstream, the ORDERPAD_UPSTREAM_URL
environment variable (a .env file in the working directory is read if
present), or upstream_url in the config file, in that order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Optional .env for deployments configured by environment.
		_ = godotenv.Load()

		listen := firstNonEmpty(proxyListen, os.Getenv("ORDERPAD_LISTEN_ADDR"), cfg.ListenAddr)
		upstream := firstNonEmpty(proxyUpstream, os.Getenv("ORDERPAD_UPSTREAM_URL"), cfg.UpstreamURL)
		if upstream == "" {
			return fmt.Errorf("no upstream url: set --upstream, ORDERPAD_UPSTREAM_URL, or upstream_url in the config")
		}

		handler, err := proxy.New(upstream, cfg.Timeout())
		if err != nil {
			return err
		}

		server := &http.Server{Addr: listen, Handler: handler}

		ctx, cancel := signalContext()
		defer cancel()
		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()

		log.Printf("relay listening on %s -> %s", listen, upstream)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	proxyCmd.Flags().StringVar(&proxyListen, "listen", "", "listen address (default from config)")
	proxyCmd.Flags().StringVar(&proxyUpstream, "upstream", "", "upstream spreadsheet service url")
	rootCmd.AddCommand(proxyCmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
