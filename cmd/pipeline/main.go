package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/omni-summarizer/internal/config"
	"github.com/nguyentantai21042004/omni-summarizer/internal/export"
	"github.com/nguyentantai21042004/omni-summarizer/internal/fetch"
	"github.com/nguyentantai21042004/omni-summarizer/internal/gemini"
	"github.com/nguyentantai21042004/omni-summarizer/internal/logger"
	"github.com/nguyentantai21042004/omni-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/omni-summarizer/internal/watcher"
	"github.com/nguyentantai21042004/omni-summarizer/internal/ytdlp"
	"github.com/nguyentantai21042004/omni-summarizer/pkg/executor"
)

const apiKeyEnv = "MY_GEMINI_KEY"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	input := flag.String("input", "", "URL or text to summarize (single-shot mode)")
	apiKey := flag.String("key", "", "per-run Gemini API key override")
	watch := flag.Bool("watch", false, "watch the input directory for request files")
	flag.Parse()

	ctx := context.Background()

	// .env is optional; the default key may also come from the real
	// environment or per-run overrides.
	_ = godotenv.Load()
	defaultKey := os.Getenv(apiKeyEnv)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Omni Summarizer Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	if defaultKey == "" {
		log.Warn(ctx, "No default API key in %s; runs without an override will not generate", apiKeyEnv)
	}

	exec := executor.New()
	gem := gemini.New(cfg.Gemini.Model, log)
	yd := ytdlp.New(exec, log)

	pipe := pipeline.New(cfg, defaultKey, pipeline.Deps{
		Pages:     fetch.New(log),
		Captions:  yd,
		Audio:     yd,
		Uploads:   gem,
		Generator: gem,
	}, log)

	if *watch {
		runWatch(ctx, cfg, pipe, log)
		return
	}

	if strings.TrimSpace(*input) == "" {
		fmt.Fprintln(os.Stderr, "Usage: pipeline -input <url or text> [-key ...] | pipeline -watch")
		os.Exit(1)
	}

	if err := runOnce(ctx, cfg, pipe, log, *input, *apiKey); err != nil {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}
}

// runOnce executes a single run, streaming log deltas to stdout as they
// arrive, then persists the summary artifacts.
func runOnce(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger, input, apiKey string) error {
	var summary string

	for ev := range pipe.Run(ctx, input, apiKey) {
		for _, line := range ev.Logs {
			fmt.Println(line)
		}
		if ev.Done {
			summary = ev.Summary
		}
	}

	fmt.Println()
	fmt.Println(summary)

	txtPath, err := export.SaveText(cfg.Paths.Output, summary)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	log.Info(ctx, "Summary saved: %s", txtPath)

	if docxPath, err := export.SaveDocx(cfg.Paths.Output, summary); err != nil {
		log.Warn(ctx, "Docx export failed: %v", err)
	} else {
		log.Info(ctx, "Docx saved: %s", docxPath)
	}

	return nil
}

// runWatch processes request files dropped into the input directory until
// interrupted.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := requestHandler(cfg, pipe, log)
	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// requestHandler runs the pipeline on the contents of a request file and
// writes the summary artifacts to the output directory.
func requestHandler(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) watcher.EventHandler {
	return func(ctx context.Context, requestPath string) error {
		data, err := os.ReadFile(requestPath)
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
		input := strings.TrimSpace(string(data))
		if input == "" {
			return fmt.Errorf("request file %s is empty", requestPath)
		}

		var summary string
		for ev := range pipe.Run(ctx, input, "") {
			for _, line := range ev.Logs {
				log.Info(ctx, "%s", line)
			}
			if ev.Done {
				summary = ev.Summary
			}
		}

		txtPath, err := export.SaveText(cfg.Paths.Output, summary)
		if err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
		log.Info(ctx, "Summary saved: %s", txtPath)

		if _, err := export.SaveDocx(cfg.Paths.Output, summary); err != nil {
			log.Warn(ctx, "Docx export failed: %v", err)
		}

		// Consumed requests are removed so restarts do not replay them.
		if err := os.Remove(requestPath); err != nil {
			log.Warn(ctx, "Failed to remove request file %s: %v", requestPath, err)
		}
		return nil
	}
}
