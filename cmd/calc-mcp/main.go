package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/calclab/calc-mcp/pkg/logger"
	calcmcp "github.com/calclab/calc-mcp/pkg/mcp"
	"github.com/calclab/calc-mcp/pkg/metrics"
)

// Version is set during build
var Version = "dev"

func main() {
	// Optional .env for CALC_DEBUG / CALC_METRICS_ADDR; missing file is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", "error", err)
	}

	metricsAddr := flag.String("metrics-addr", os.Getenv("CALC_METRICS_ADDR"),
		"address to expose Prometheus metrics on (empty disables)")
	flag.Parse()

	logger.Info("Starting Calculator MCP", "version", Version)

	if *metricsAddr != "" {
		go metrics.Serve(*metricsAddr)
	}

	calcServer := calcmcp.NewMCPCalcServer(Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
