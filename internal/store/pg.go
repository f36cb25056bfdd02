package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metaseek/aggregator/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Migrate creates or updates the sources table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.Source{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (s *pgStore) CreateSource(ctx context.Context, source *schema.Source) error {
	if source.ID == "" {
		source.ID = uuid.NewString()
	}
	if source.CreatedAt.IsZero() {
		source.CreatedAt = time.Now().UTC()
	}
	if source.Config == nil {
		source.Config = []byte("{}")
	}

	if err := s.db.WithContext(ctx).Create(source).Error; err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}

	return nil
}

func (s *pgStore) ListSources(ctx context.Context) ([]*schema.Source, error) {
	var sources []*schema.Source
	err := s.db.WithContext(ctx).Order("created_at").Find(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return sources, nil
}

func (s *pgStore) ListSourcesByType(ctx context.Context, sourceType string) ([]*schema.Source, error) {
	var sources []*schema.Source
	err := s.db.WithContext(ctx).
		Where("type = ? AND enabled", sourceType).
		Order("created_at").
		Find(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sources by type: %w", err)
	}

	return sources, nil
}

func (s *pgStore) ListSourcesByIDs(ctx context.Context, ids []string) ([]*schema.Source, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var sources []*schema.Source
	err := s.db.WithContext(ctx).
		Where("id IN ? AND enabled", ids).
		Order("created_at").
		Find(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sources by ids: %w", err)
	}

	return sources, nil
}

func (s *pgStore) GetSource(ctx context.Context, id string) (*schema.Source, error) {
	var source schema.Source
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

func (s *pgStore) UpdateSource(ctx context.Context, id string, input UpdateSourceInput) (*schema.Source, error) {
	existing, err := s.GetSource(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.URLBase != nil {
		updates["url_base"] = *input.URLBase
	}
	if input.SearchMethod != nil {
		updates["search_method"] = *input.SearchMethod
	}
	if input.Config != nil {
		raw, err := json.Marshal(input.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		updates["config"] = raw
	}
	if input.Enabled != nil {
		updates["enabled"] = *input.Enabled
	}

	if len(updates) > 0 {
		err = s.db.WithContext(ctx).
			Model(&schema.Source{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update source: %w", err)
		}
	}

	return s.GetSource(ctx, id)
}

func (s *pgStore) DeleteSource(ctx context.Context, id string) (bool, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Source{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete source: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *pgStore) CountSources(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Source{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sources: %w", err)
	}

	return count, nil
}

func (s *pgStore) SeedSources(ctx context.Context, sources []*schema.Source) error {
	for _, src := range sources {
		if src.ID == "" {
			src.ID = uuid.NewString()
		}
		if src.CreatedAt.IsZero() {
			src.CreatedAt = time.Now().UTC()
		}
	}

	if err := s.db.WithContext(ctx).Create(sources).Error; err != nil {
		return fmt.Errorf("failed to seed sources: %w", err)
	}

	return nil
}
