// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/recall"
	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "recall",
		Usage:  "Meeting recording ingestion and semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: append(append([]cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8080",
					},
					&cli.IntFlag{
						Name:  "max-ingests",
						Usage: "Maximum concurrent ingestion runs",
						Value: 2,
					},
				}, dbFlag()), aiFlags()...),
			},
			{
				Name:      "ingest",
				Usage:     "Ingest a local recording file",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags:     append([]cli.Flag{dbFlag()}, aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search stored meetings",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     append([]cli.Flag{dbFlag()}, aiFlags()...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "ai-host",
			Usage:   "Inference service host URL",
			Value:   "https://api.openai.com/v1",
			EnvVars: []string{"OPENAI_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "ai-token",
			Usage:   "Inference service API token (\"none\" for unauthenticated local services)",
			Value:   "none",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model for summaries and action extraction",
			Value: "gpt-4o-mini",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "text-embedding-3-small",
		},
		&cli.StringFlag{
			Name:  "transcription-model",
			Usage: "Speech-to-text model name",
			Value: "whisper-1",
		},
		&cli.StringFlag{
			Name:  "image-model",
			Usage: "Image generation model name",
			Value: "dall-e-3",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithToken(c.String("ai-token")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithTranscriptionModel(c.String("transcription-model")),
		ai.WithImageModel(c.String("image-model")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func openDatabase(c *cli.Context) (*recall.Database, error) {
	config, err := aiConfigFromFlags(c)
	if err != nil {
		return nil, err
	}

	db, err := recall.NewDatabase(c.String("db"), recall.WithAIConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(db.MeetingStore(), pipeline, searcher,
		server.WithMaxIngests(c.Int("max-ingests")))
	if err != nil {
		return err
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:    c.String("addr"),
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func ingestCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("file argument is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	meeting, err := pipeline.Ingest(c.Context, f, contentTypeFor(path))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Ingested meeting %s\n", meeting.Id)
	fmt.Printf("Title: %s\n", meeting.Title)
	fmt.Printf("Summary: %s\n", meeting.Summary)
	for _, action := range meeting.Actions {
		fmt.Printf("  - %s (%s)\n", action.Title, action.Owner)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query argument is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	result, err := searcher.Search(c.Context, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(result.Hits) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, hit := range result.Hits {
		fmt.Printf("[%0.3f] meeting %d (%s)\n  %s\n", hit.Score, hit.Idx, hit.MeetingID, hit.Text)
	}
	if len(result.RelatedIds) > 0 {
		fmt.Printf("Related meetings: %s\n", strings.Join(result.RelatedIds, ", "))
	}
	return nil
}

// contentTypeFor maps a file extension to an upload content type. Video
// extensions route the pipeline through ffmpeg normalization.
func contentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "video/mp4"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "audio/mpeg"
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
