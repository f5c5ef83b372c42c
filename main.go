// Command slidepuzzle is a sliding tile puzzle (15-puzzle and friends).
//
// It supports four modes:
//  1. "play"   – interactive terminal game
//  2. "scores" – print the high score table
//  3. "serve"  – HTTP server exposing REST API, WebSocket, and an /mcp endpoint
//  4. "mcp"    – MCP stdio server for AI agents
//
// Flags control grid size, host/port, and data locations; a local .env
// file can override any SLIDEPUZZLE_* environment variable.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	clilib "github.com/urfave/cli/v3"

	"github.com/dmateus/slidepuzzle/api"
	"github.com/dmateus/slidepuzzle/frontend/cli"
	"github.com/dmateus/slidepuzzle/game/config"
	"github.com/dmateus/slidepuzzle/game/scores"
	"github.com/dmateus/slidepuzzle/game/service"
	"github.com/dmateus/slidepuzzle/game/session"
	"github.com/dmateus/slidepuzzle/transport/mcp"
	"github.com/dmateus/slidepuzzle/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "slidepuzzle"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cmd := rootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *clilib.Command {
	return &clilib.Command{
		Name:    AppName,
		Usage:   "sliding tile puzzle: play in the terminal or serve over HTTP and MCP",
		Version: Version,
		Commands: []*clilib.Command{
			playCommand(),
			scoresCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}
}

func playCommand() *clilib.Command {
	return &clilib.Command{
		Name:  "play",
		Usage: "play interactively in the terminal",
		Flags: []clilib.Flag{
			&clilib.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "grid size (3-8)",
			},
			&clilib.StringFlag{
				Name:    "frontend",
				Aliases: []string{"f"},
				Value:   "term",
				Usage:   "frontend variant: term (single keypress) or line (one command per line)",
			},
		},
		Action: func(ctx context.Context, cmd *clilib.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			size := int(cmd.Int("size"))
			if size == 0 {
				size = cfg.DefaultSize
			}
			if err := config.ValidatePlayableSize(size); err != nil {
				return err
			}

			store := scores.NewFileStore(cfg.ScoresFile)
			switch frontend := cmd.String("frontend"); frontend {
			case "term":
				return cli.NewApp(size, store).Run()
			case "line":
				return cli.NewLineApp(size, store).Run()
			default:
				return fmt.Errorf("unknown frontend %q (want term or line)", frontend)
			}
		},
	}
}

func scoresCommand() *clilib.Command {
	return &clilib.Command{
		Name:  "scores",
		Usage: "print the high score table",
		Flags: []clilib.Flag{
			&clilib.IntFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "only show one grid size",
			},
		},
		Action: func(ctx context.Context, cmd *clilib.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store := scores.NewFileStore(cfg.ScoresFile)

			sizes, err := store.Sizes()
			if err != nil {
				return err
			}
			if only := int(cmd.Int("size")); only != 0 {
				sizes = []int{only}
			}
			if len(sizes) == 0 {
				fmt.Println("No high scores yet.")
				return nil
			}

			for _, size := range sizes {
				entries, err := store.Get(size)
				if err != nil {
					return err
				}
				fmt.Printf("--- %dx%d ---\n", size, size)
				if len(entries) == 0 {
					fmt.Println("  no scores")
					continue
				}
				for i, e := range entries {
					fmt.Printf("  %2d. %4d moves  %7.1fs  (%s)\n", i+1, e.Moves, e.Time, e.Date)
				}
			}
			return nil
		},
	}
}

func serveCommand() *clilib.Command {
	return &clilib.Command{
		Name:  "serve",
		Usage: "run the HTTP server with REST API, WebSocket, and /mcp endpoint",
		Flags: []clilib.Flag{
			&clilib.StringFlag{
				Name:  "host",
				Value: "localhost",
				Usage: "listen host",
			},
			&clilib.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "listen port",
			},
		},
		Action: func(ctx context.Context, cmd *clilib.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			gameService, manager, err := initializeServices(cfg)
			if err != nil {
				return err
			}
			go sessionCleanupRoutine(manager)

			addr := fmt.Sprintf("%s:%d", cmd.String("host"), cmd.Int("port"))
			return runHTTPServer(gameService, cfg, addr)
		},
	}
}

func mcpCommand() *clilib.Command {
	return &clilib.Command{
		Name:  "mcp",
		Usage: "run an MCP stdio server for AI agents",
		Action: func(ctx context.Context, cmd *clilib.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			gameService, manager, err := initializeServices(cfg)
			if err != nil {
				return err
			}
			go sessionCleanupRoutine(manager)

			log.Printf("Starting MCP stdio server")
			return mcp.NewServer(gameService, cfg.DefaultSize).ServeStdio()
		},
	}
}

// initializeServices wires persistence, the session manager, and the
// score store into a game service.
func initializeServices(cfg *config.Config) (service.GameService, *session.Manager, error) {
	persistence, err := session.NewFilePersistence(cfg.SessionsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	manager := session.NewManagerWithPersistence(persistence)
	if err := manager.LoadPersistedSessions(); err != nil {
		log.Printf("Warning: Failed to load persisted sessions: %v", err)
	}

	store := scores.NewFileStore(cfg.ScoresFile)
	return service.NewGameService(manager, store), manager, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Printf("Cleaned up %d expired sessions", removed)
		}
	}
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and
// an /mcp endpoint, and blocks until a shutdown signal arrives.
func runHTTPServer(gameService service.GameService, cfg *config.Config, addr string) error {
	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub, cfg.DefaultSize)
	mcpServer := mcp.NewServer(gameService, cfg.DefaultSize)

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpServer.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("Received signal: %v. Shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
