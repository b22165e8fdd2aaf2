package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solacehq/solace-core/internal/types"
)

// loginDayModel is the GORM model for the login_days table. One row per
// user-day, written the first time the user shows up that day.
type loginDayModel struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"`
	UserID string    `gorm:"column:user_id;uniqueIndex:idx_login_days_user_day"`
	Day    time.Time `gorm:"column:day;uniqueIndex:idx_login_days_user_day"`
}

func (loginDayModel) TableName() string {
	return "login_days"
}

// LoginRepo records and reads login days for streak tracking.
type LoginRepo struct {
	db *gorm.DB
}

// NewLoginRepo creates a login repository backed by PostgreSQL.
func NewLoginRepo(db *gorm.DB) *LoginRepo {
	return &LoginRepo{db: db}
}

// Record marks the day of at as a login day. Repeated calls on the same
// day are no-ops.
func (r *LoginRepo) Record(ctx context.Context, userID string, at time.Time) error {
	record := loginDayModel{
		UserID: userID,
		Day:    types.DayOf(at),
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record login day: %w", err)
	}
	return nil
}

// Days returns every recorded login day for the user, oldest first.
func (r *LoginRepo) Days(ctx context.Context, userID string) ([]time.Time, error) {
	var records []loginDayModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query login days: %w", err)
	}

	days := make([]time.Time, 0, len(records))
	for _, record := range records {
		days = append(days, record.Day.UTC())
	}
	return days, nil
}
