package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solacehq/solace-core/internal/types"
)

// messageCountModel is the GORM model for the message_counts table, the
// per-day message log kept independently of snapshots.
type messageCountModel struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"`
	UserID string    `gorm:"column:user_id;uniqueIndex:idx_message_counts_user_day"`
	Day    time.Time `gorm:"column:day;uniqueIndex:idx_message_counts_user_day"`
	Count  int       `gorm:"column:count"`
}

func (messageCountModel) TableName() string {
	return "message_counts"
}

// HistoryRepo reads the time-series side of the engine: past snapshots and
// the message-count log that feed the daily aggregator.
type HistoryRepo struct {
	db *gorm.DB
}

// NewHistoryRepo creates a history repository backed by PostgreSQL.
func NewHistoryRepo(db *gorm.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Snapshots returns the user's snapshots between from and to inclusive,
// oldest first.
func (r *HistoryRepo) Snapshots(ctx context.Context, userID string, from, to time.Time) ([]types.MoodSnapshot, error) {
	var records []moodSnapshotModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("day >= ? AND day <= ?", from.UTC(), to.UTC()).
		Order("day ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query snapshot history: %w", err)
	}

	snapshots := make([]types.MoodSnapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, snapshotFromModel(record))
	}
	return snapshots, nil
}

// MessageCounts returns the user's per-day message counts between from and
// to inclusive, oldest first.
func (r *HistoryRepo) MessageCounts(ctx context.Context, userID string, from, to time.Time) ([]types.MessageCount, error) {
	var records []messageCountModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("day >= ? AND day <= ?", from.UTC(), to.UTC()).
		Order("day ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query message counts: %w", err)
	}

	counts := make([]types.MessageCount, 0, len(records))
	for _, record := range records {
		counts = append(counts, types.MessageCount{
			Date:  record.Day.UTC(),
			Count: record.Count,
		})
	}
	return counts, nil
}

// RecordMessages adds n messages to the user's log for the given day.
func (r *HistoryRepo) RecordMessages(ctx context.Context, userID string, day time.Time, n int) error {
	if n <= 0 {
		return nil
	}
	record := messageCountModel{
		UserID: userID,
		Day:    types.DayOf(day),
		Count:  n,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("message_counts.count + ?", n)}),
		}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record messages: %w", err)
	}
	return nil
}
