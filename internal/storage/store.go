package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/solacehq/solace-core/internal/dailyreset"
	"github.com/solacehq/solace-core/internal/mood"
)

// Store holds the DB pool and repositories.
type Store struct {
	db        *gorm.DB
	Snapshots mood.SnapshotRepo
	History   *HistoryRepo
	Goals     *GoalRepo
	Logins    *LoginRepo
	Resets    dailyreset.ResetStore
}

// NewStore initializes the PostgreSQL pool and repositories.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{
		db:        db,
		Snapshots: NewSnapshotRepo(db),
		History:   NewHistoryRepo(db),
		Goals:     NewGoalRepo(db),
		Logins:    NewLoginRepo(db),
		Resets:    NewResetRepo(db),
	}
	return store, nil
}

// Models lists every persisted model for migrations.
func Models() []any {
	return []any{
		&moodSnapshotModel{},
		&messageCountModel{},
		&goalModel{},
		&loginDayModel{},
		&dailyResetModel{},
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
