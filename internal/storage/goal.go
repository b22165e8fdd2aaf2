package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/solacehq/solace-core/internal/types"
)

// goalModel is the GORM model for the daily_goals table.
type goalModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index:idx_daily_goals_user"`
	Slug      string    `gorm:"column:slug"`
	Text      string    `gorm:"column:text"`
	Completed bool      `gorm:"column:completed"`
	Points    int       `gorm:"column:points"`
	Category  string    `gorm:"column:category"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (goalModel) TableName() string {
	return "daily_goals"
}

// GoalRepo manages the user's daily goal slate.
type GoalRepo struct {
	db *gorm.DB
}

// NewGoalRepo creates a goal repository backed by PostgreSQL.
func NewGoalRepo(db *gorm.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// List returns the user's goals, oldest first.
func (r *GoalRepo) List(ctx context.Context, userID string) ([]types.Goal, error) {
	var records []goalModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query daily goals: %w", err)
	}

	goals := make([]types.Goal, 0, len(records))
	for _, record := range records {
		goals = append(goals, goalFromModel(record))
	}
	return goals, nil
}

// CompleteBySlug marks every goal matching the slug complete.
func (r *GoalRepo) CompleteBySlug(ctx context.Context, userID string, slug string) error {
	if err := r.db.WithContext(ctx).
		Model(&goalModel{}).
		Where("user_id = ?", userID).
		Where("slug = ?", slug).
		Where("completed = ?", false).
		Update("completed", true).Error; err != nil {
		return fmt.Errorf("failed to complete goal: %w", err)
	}
	return nil
}

// Complete marks a single goal complete by ID.
func (r *GoalRepo) Complete(ctx context.Context, userID string, goalID string) error {
	if err := r.db.WithContext(ctx).
		Model(&goalModel{}).
		Where("user_id = ?", userID).
		Where("id = ?", goalID).
		Update("completed", true).Error; err != nil {
		return fmt.Errorf("failed to complete goal: %w", err)
	}
	return nil
}

// Add stores a new goal for the user.
func (r *GoalRepo) Add(ctx context.Context, userID string, goal types.Goal) error {
	record := modelFromGoal(userID, goal)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}
	return nil
}

// resetGoalSlate replaces the dated portion of the slate inside a
// transaction. Custom goals survive the rollover with completion cleared;
// everything else is dropped and replaced by the fresh goals.
func resetGoalSlate(tx *gorm.DB, userID string, fresh []types.Goal) error {
	if err := tx.
		Where("user_id = ?", userID).
		Where("category <> ?", string(types.GoalCustom)).
		Delete(&goalModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear daily goals: %w", err)
	}

	if len(fresh) > 0 {
		records := make([]goalModel, 0, len(fresh))
		for _, goal := range fresh {
			records = append(records, modelFromGoal(userID, goal))
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert fresh goals: %w", err)
		}
	}

	if err := tx.
		Model(&goalModel{}).
		Where("user_id = ?", userID).
		Where("category = ?", string(types.GoalCustom)).
		Update("completed", false).Error; err != nil {
		return fmt.Errorf("failed to reset custom goals: %w", err)
	}
	return nil
}

func goalFromModel(record goalModel) types.Goal {
	return types.Goal{
		ID:        record.ID,
		Slug:      record.Slug,
		Text:      record.Text,
		Completed: record.Completed,
		Points:    record.Points,
		Category:  types.GoalCategory(record.Category),
		CreatedAt: record.CreatedAt.UTC(),
	}
}

func modelFromGoal(userID string, goal types.Goal) goalModel {
	return goalModel{
		ID:        goal.ID,
		UserID:    userID,
		Slug:      goal.Slug,
		Text:      goal.Text,
		Completed: goal.Completed,
		Points:    goal.Points,
		Category:  string(goal.Category),
		CreatedAt: goal.CreatedAt,
	}
}
