package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ib-77/results/internal/tenant"
)

type userRecord struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"not null"`
	Zip     string `gorm:"not null;index:idx_tenant_users_address"`
	HouseNr string `gorm:"not null;index:idx_tenant_users_address"`
}

func (userRecord) TableName() string { return "tenant_users" }

// Connect opens and pings a Postgres-backed GORM connection pool.
func Connect(ctx context.Context, databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&userRecord{}); err != nil {
		return fmt.Errorf("migrate tenant_users: %w", err)
	}
	slog.Default().InfoContext(ctx, "postgres migrations completed",
		"module", "postgres",
		"layer", "adapter",
		"operation", "run_migrations",
		"outcome", "success",
	)
	return nil
}

func (s *Store) User(ctx context.Context, id int) (string, bool, error) {
	var rec userRecord
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Name, true, nil
}

func (s *Store) SetUser(ctx context.Context, id int, name string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&userRecord{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) UsersAtAddress(ctx context.Context, zip, nr string) ([]int, error) {
	var ids []int
	err := s.db.WithContext(ctx).Model(&userRecord{}).
		Where("zip = ? AND house_nr = ?", zip, nr).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *Store) Seed(ctx context.Context, users []tenant.User) error {
	if len(users) == 0 {
		return nil
	}
	records := make([]userRecord, len(users))
	for i, u := range users {
		records[i] = userRecord{ID: u.ID, Name: u.Name, Zip: u.Zip, HouseNr: u.HouseNr}
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&records).Error
}
