package scores

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// bestScoreRowID is the primary key of the only row in the table.
const bestScoreRowID = 1

// BestScore is the single-row table holding the best score.
type BestScore struct {
	ID        uint `gorm:"primaryKey"`
	Score     int  `gorm:"not null"`
	UpdatedAt time.Time
}

// DBBackend stores the best score through gorm.
type DBBackend struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenSqlite opens (or creates) a SQLite database at path.
// An empty path uses a private in-memory database.
func OpenSqlite(path string, log zerolog.Logger) (*DBBackend, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", path, err)
	}
	log.Info().Str("path", path).Msg("Using local SQLite DB for scores")
	return newDBBackend(db, log)
}

// OpenPostgres connects to the Postgres database at dsn.
func OpenPostgres(dsn string, log zerolog.Logger) (*DBBackend, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	log.Info().Msg("Connected to Postgres DB for scores")
	return newDBBackend(db, log)
}

func newDBBackend(db *gorm.DB, log zerolog.Logger) (*DBBackend, error) {
	if err := db.AutoMigrate(&BestScore{}); err != nil {
		return nil, fmt.Errorf("migrating best score table: %w", err)
	}
	return &DBBackend{db: db, log: log}, nil
}

// Load returns the stored score, or 0 if the row does not exist yet.
func (b *DBBackend) Load() (int, error) {
	var row BestScore
	err := b.db.First(&row, bestScoreRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading best score: %w", err)
	}
	return row.Score, nil
}

// Save upserts the single best score row.
func (b *DBBackend) Save(score int) error {
	row := BestScore{ID: bestScoreRowID, Score: score, UpdatedAt: time.Now().UTC()}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving best score: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (b *DBBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
