package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Account and issue rows share one sqlite file. The busy timeout keeps
// concurrent request handlers from failing on SQLITE_BUSY while another
// write (a signup, a reset consumption) holds the lock.
const sqlitePragmas = "_foreign_keys=on&_busy_timeout=5000"

// OpenSQLite opens the account database, creating the file and its directory
// when missing, and brings the schema up to date. TranslateError lets the
// driver surface duplicate signups as gorm.ErrDuplicatedKey instead of a raw
// constraint message.
func OpenSQLite(databasePath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(databasePath), 0o755); err != nil {
		return nil, fmt.Errorf("create account database directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(databasePath+"?"+sqlitePragmas), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open account database: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("migrate account database: %w", err)
	}

	return database, nil
}
