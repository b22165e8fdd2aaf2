// Package main prints a user's wellness report as JSON: the gap-filled
// daily series, weekly trends, insights, and login streak.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solacehq/solace-core/internal/config"
	"github.com/solacehq/solace-core/internal/storage"
	"github.com/solacehq/solace-core/internal/streak"
	"github.com/solacehq/solace-core/internal/trend"
	"github.com/solacehq/solace-core/internal/types"
)

type report struct {
	UserID       string               `json:"user_id"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Streak       int                  `json:"streak"`
	DailySeries  []types.MoodSnapshot `json:"daily_series"`
	WeeklyTrends []types.WeeklyTrend  `json:"weekly_trends"`
	Insights     []types.Insight      `json:"insights"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	userID := flag.String("user", "", "user ID to report on")
	days := flag.Int("days", 0, "history window in days (defaults to HISTORY_DAYS)")
	flag.Parse()
	if *userID == "" {
		log.Fatal("missing required flag: -user")
	}

	cfg := config.Load()
	window := *days
	if window <= 0 {
		window = cfg.HistoryDays
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	now := time.Now().UTC()
	today := types.DayOf(now)
	from := today.AddDate(0, 0, -(window - 1))

	history, err := store.History.Snapshots(ctx, *userID, from, today)
	if err != nil {
		log.Fatalf("failed to load snapshot history: %v", err)
	}
	messages, err := store.History.MessageCounts(ctx, *userID, from, today)
	if err != nil {
		log.Fatalf("failed to load message counts: %v", err)
	}
	logins, err := store.Logins.Days(ctx, *userID)
	if err != nil {
		log.Fatalf("failed to load login days: %v", err)
	}

	daily := trend.Aggregate(history, messages, cfg.DefaultWellness)
	weekly := trend.WeeklyTrends(daily)
	insights := trend.Insights(daily, weekly)

	current := streak.Current(logins, today)
	if len(logins) == 0 {
		// No login log for this user; fall back to days with inferred moods.
		current = streak.FromSeries(daily, today)
	}

	out := report{
		UserID:       *userID,
		GeneratedAt:  now,
		Streak:       current,
		DailySeries:  daily,
		WeeklyTrends: weekly,
		Insights:     insights,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		log.Fatalf("failed to encode report: %v", err)
	}
}
