// Package main is the interactive mood journal. Each line typed is treated
// as one inbound message and run through the full tracking pipeline.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/solacehq/solace-core/internal/config"
	"github.com/solacehq/solace-core/internal/dailyreset"
	"github.com/solacehq/solace-core/internal/mood"
	"github.com/solacehq/solace-core/internal/sentiment"
	"github.com/solacehq/solace-core/internal/storage"
	"github.com/solacehq/solace-core/internal/types"
	"github.com/solacehq/solace-core/internal/wellness"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	userID := flag.String("user", "", "user ID to journal as")
	flag.Parse()
	if *userID == "" {
		log.Fatal("missing required flag: -user")
	}

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nshutting down...")
		cancel()
		// The journal loop may be blocked on stdin; context cancellation
		// cannot interrupt it, so give it a moment and force exit.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	var hints sentiment.Provider
	if provider, err := sentiment.FromConfig(ctx, cfg); err != nil {
		slog.Warn("sentiment hints disabled", "error", err.Error())
	} else {
		hints = provider
	}

	classifier := mood.NewClassifier(cfg.UpdateThreshold)
	tracker := mood.NewService(classifier, wellness.NewUpdater(nil), store.Snapshots, store.Goals, cfg.DefaultWellness)
	resets := dailyreset.NewScheduler(store.Resets, cfg.DefaultWellness)

	now := time.Now().UTC()
	if err := store.Logins.Record(ctx, *userID, now); err != nil {
		slog.Warn("failed to record login day", "error", err.Error())
	}
	if _, err := resets.Check(ctx, *userID, now); err != nil {
		slog.Warn("daily reset check failed", "error", err.Error())
	}

	fmt.Println("mood journal ready. Type a message, Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var hint types.Sentiment
		if hints != nil {
			label, err := hints.Hint(ctx, text)
			if err != nil {
				slog.Warn("failed to get sentiment hint", "error", err.Error())
			} else {
				hint = label
			}
		}

		result, err := tracker.Process(ctx, *userID, text, hint)
		if err != nil {
			slog.Error("failed to process message", "error", err.Error())
			continue
		}
		if err := store.History.RecordMessages(ctx, *userID, time.Now().UTC(), 1); err != nil {
			slog.Warn("failed to record message", "error", err.Error())
		}

		printResult(result)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
}

func printResult(result *mood.Result) {
	score := "-"
	if result.Snapshot.WellnessScore != nil {
		score = strconv.Itoa(*result.Snapshot.WellnessScore)
	}
	if !result.Updated {
		fmt.Printf("%s %s (held, confidence %.2f) wellness %s, %d message(s) today\n",
			result.Snapshot.MoodTag, result.Snapshot.MoodName,
			result.Classification.Confidence, score, result.Snapshot.MessageCount)
		return
	}
	fmt.Printf("%s %s (%s via %s, confidence %.2f) wellness %s, %d message(s) today\n",
		result.Snapshot.MoodTag, result.Snapshot.MoodName,
		result.Classification.Sentiment, result.Classification.Method,
		result.Classification.Confidence, score, result.Snapshot.MessageCount)
}
