package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/internal/config"
	"github.com/finsight-app/finsight/internal/server"
	"github.com/finsight-app/finsight/service"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "finsight-share",
		Short: "Serve public FinSight share pages",
		Long: `finsight-share is a small web server that renders public FinSight
analyses at /share/{id}. It proxies the backend's token-less share
endpoint, so no credentials are stored or required.`,
		RunE: runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Configuration file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// the viewer is anonymous: no session store is wired
	api := service.NewAPIClient(cfg.Backend.URL, nil, service.WithTimeout(cfg.Timeout()))

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" {
		host = "0.0.0.0"
	}
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	logger.Info().Str("backend", cfg.Backend.URL).Msg("backend configured")

	api2 := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Analyses: service.NewAnalysisClient(api),
			Share:    service.NewShareBuilder(cfg.Share.BaseURL),
		},
	})
	return api2.Start()
}
