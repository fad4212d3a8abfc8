package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/threadchain/threadchain/internal/models"
	"github.com/threadchain/threadchain/pkg/config"
	"github.com/threadchain/threadchain/pkg/logging"
	"github.com/threadchain/threadchain/pkg/telemetry"
)

// zapWriter adapts zap.Logger to logger.Writer interface
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Printf(format string, args ...interface{}) {
	w.logger.Sugar().Infof(format, args...)
}

// PostgresStore is a RemoteStore backed directly by the posts table.
type PostgresStore struct {
	db          *gorm.DB
	searchLimit int
}

// OpenDB creates a new database connection
func OpenDB(cfg *config.DatabaseConfig, logLevel string) (*gorm.DB, error) {
	var gormLogLevel logger.LogLevel
	switch logLevel {
	case "DEBUG", "debug":
		gormLogLevel = logger.Info
	case "INFO", "info":
		gormLogLevel = logger.Warn
	case "WARN", "warn", "WARNING", "warning":
		gormLogLevel = logger.Error
	case "ERROR", "error":
		gormLogLevel = logger.Silent
	default:
		gormLogLevel = logger.Warn
	}

	writer := &zapWriter{logger: logging.GetLogger()}
	gormLogger := logger.New(
		writer,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.GetLogger().Info("Database connection established")

	return db, nil
}

// NewPostgresStore creates a new Postgres-backed remote store
func NewPostgresStore(db *gorm.DB, searchLimit int) *PostgresStore {
	return &PostgresStore{db: db, searchLimit: searchLimit}
}

// ListPosts fetches the canonical post collection, newest first.
func (s *PostgresStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "postgres.list_posts")
	defer span.End()

	var rows []postRow
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr("list_posts", err)
	}

	posts := toModels(rows)
	if err := s.loadTags(ctx, posts); err != nil {
		return nil, wrapErr("list_posts", err)
	}
	return posts, nil
}

// SearchPosts runs a case-insensitive substring search against post
// content, newest first, bounded by the search limit.
func (s *PostgresStore) SearchPosts(ctx context.Context, q string) ([]models.Post, error) {
	ctx, span := telemetry.StartSpan(ctx, "postgres.search_posts")
	defer span.End()

	var rows []postRow
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("content ILIKE ?", "%"+q+"%").
		Order("created_at DESC").
		Limit(s.searchLimit).
		Find(&rows).Error; err != nil {
		return nil, wrapErr("search_posts", err)
	}

	posts := toModels(rows)
	if err := s.loadTags(ctx, posts); err != nil {
		return nil, wrapErr("search_posts", err)
	}
	return posts, nil
}

// SearchProfiles searches profiles by username or display name.
func (s *PostgresStore) SearchProfiles(ctx context.Context, q string) ([]models.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "postgres.search_profiles")
	defer span.End()

	pattern := "%" + q + "%"
	var rows []profileRow
	if err := s.db.WithContext(ctx).
		Where("username ILIKE ? OR display_name ILIKE ?", pattern, pattern).
		Limit(10).
		Find(&rows).Error; err != nil {
		return nil, wrapErr("search_profiles", err)
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toModel())
	}
	return users, nil
}

// loadTags fetches tag rows for the given posts in one batch query
func (s *PostgresStore) loadTags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
	}

	var rows []postTagRow
	if err := s.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return err
	}

	attachTags(posts, rows)
	return nil
}
