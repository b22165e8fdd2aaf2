package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solacehq/solace-core/internal/dailyreset"
)

// dailyResetModel is the GORM model for the daily_resets table. One row per
// user holding the last day whose reset was applied.
type dailyResetModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	LastReset time.Time `gorm:"column:last_reset"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (dailyResetModel) TableName() string {
	return "daily_resets"
}

type resetRepo struct {
	db *gorm.DB
}

// NewResetRepo creates a reset repository backed by PostgreSQL.
func NewResetRepo(db *gorm.DB) dailyreset.ResetStore {
	return &resetRepo{db: db}
}

// ApplyReset claims the day and writes the rollover state in one
// transaction. The claim is a conditional update on the last-reset marker,
// so concurrent callers resolve to a single application. Returns false when
// the user is already fresh for the day.
func (r *resetRepo) ApplyReset(ctx context.Context, userID string, day time.Time, defaults dailyreset.Defaults) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := claimResetDay(tx, userID, day)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}
		applied = true

		record := modelFromSnapshot(userID, defaults.Snapshot)
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
				DoUpdates: clause.AssignmentColumns(snapshotAssignColumns),
			}).
			Create(&record).Error; err != nil {
			return fmt.Errorf("failed to write default snapshot: %w", err)
		}

		return resetGoalSlate(tx, userID, defaults.Goals)
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// claimResetDay advances the user's last-reset marker, but only while it is
// stale. A zero-row update means another caller already claimed the day, or
// the user has no marker yet; the insert path settles the latter.
func claimResetDay(tx *gorm.DB, userID string, day time.Time) (bool, error) {
	update := tx.Model(&dailyResetModel{}).
		Where("user_id = ?", userID).
		Where("last_reset < ?", day).
		Update("last_reset", day)
	if update.Error != nil {
		return false, fmt.Errorf("failed to claim reset day: %w", update.Error)
	}
	if update.RowsAffected > 0 {
		return true, nil
	}

	var existing dailyResetModel
	if err := tx.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check reset marker: %w", err)
	}
	if existing.UserID != "" {
		return false, nil
	}

	record := dailyResetModel{UserID: userID, LastReset: day}
	insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if insert.Error != nil {
		return false, fmt.Errorf("failed to create reset marker: %w", insert.Error)
	}
	return insert.RowsAffected > 0, nil
}
