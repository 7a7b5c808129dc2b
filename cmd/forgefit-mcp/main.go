// Command forgefit-mcp runs the MCP server on stdio. It serves data from
// either a local Postgres database (-dsn) or a remote ForgeFit server
// over its REST API (-server).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/forgefit/internal/mcp"
	"github.com/claude/forgefit/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "remote ForgeFit server URL (REST API mode)")
	dsn := flag.String("dsn", "", "Postgres DSN (local database mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("forgefit-mcp", Version)
		return
	}

	// Log to stderr: stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	switch {
	case *serverURL != "":
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("using remote data source", "server", *serverURL)
	case *dsn != "":
		db, err := storage.New(context.Background(), *dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("using local database")
	default:
		fmt.Fprintf(os.Stderr, "Usage: forgefit-mcp (-server <URL> | -dsn <postgres DSN>)\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server exited", "error", err)
		os.Exit(1)
	}
}
