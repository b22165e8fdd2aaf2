package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solacehq/solace-core/internal/mood"
	"github.com/solacehq/solace-core/internal/types"
)

// moodSnapshotModel is the GORM model for the mood_snapshots table. Each row
// is one user-day; the newest row is the user's current snapshot.
type moodSnapshotModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;uniqueIndex:idx_mood_snapshots_user_day"`
	Day           time.Time `gorm:"column:day;uniqueIndex:idx_mood_snapshots_user_day"`
	MoodTag       string    `gorm:"column:mood_tag"`
	MoodName      string    `gorm:"column:mood_name"`
	Sentiment     string    `gorm:"column:sentiment"`
	WellnessScore *int      `gorm:"column:wellness_score"`
	MessageCount  int       `gorm:"column:message_count"`
	RecordedAt    time.Time `gorm:"column:recorded_at"`
}

func (moodSnapshotModel) TableName() string {
	return "mood_snapshots"
}

var snapshotAssignColumns = []string{
	"mood_tag", "mood_name", "sentiment", "wellness_score", "message_count", "recorded_at",
}

type snapshotRepo struct {
	db *gorm.DB
}

// NewSnapshotRepo creates a snapshot repository backed by PostgreSQL.
func NewSnapshotRepo(db *gorm.DB) mood.SnapshotRepo {
	return &snapshotRepo{db: db}
}

// Get returns the user's most recent snapshot, or nil when none exists.
func (r *snapshotRepo) Get(ctx context.Context, userID string) (*types.MoodSnapshot, error) {
	var record moodSnapshotModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day DESC").
		Limit(1).
		Find(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to query mood snapshot: %w", err)
	}
	if record.ID == 0 {
		return nil, nil
	}
	snapshot := snapshotFromModel(record)
	return &snapshot, nil
}

// Upsert writes the snapshot for its day, replacing any existing row.
func (r *snapshotRepo) Upsert(ctx context.Context, userID string, snapshot types.MoodSnapshot) error {
	record := modelFromSnapshot(userID, snapshot)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns(snapshotAssignColumns),
		}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to upsert mood snapshot: %w", err)
	}
	return nil
}

func snapshotFromModel(record moodSnapshotModel) types.MoodSnapshot {
	return types.MoodSnapshot{
		Date:          record.Day.UTC(),
		MoodTag:       record.MoodTag,
		MoodName:      record.MoodName,
		Sentiment:     types.Sentiment(record.Sentiment),
		WellnessScore: record.WellnessScore,
		MessageCount:  record.MessageCount,
		Timestamp:     record.RecordedAt.UTC(),
	}
}

func modelFromSnapshot(userID string, snapshot types.MoodSnapshot) moodSnapshotModel {
	return moodSnapshotModel{
		UserID:        userID,
		Day:           snapshot.Date.UTC(),
		MoodTag:       snapshot.MoodTag,
		MoodName:      snapshot.MoodName,
		Sentiment:     string(snapshot.Sentiment),
		WellnessScore: snapshot.WellnessScore,
		MessageCount:  snapshot.MessageCount,
		RecordedAt:    snapshot.Timestamp.UTC(),
	}
}
