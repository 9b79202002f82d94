// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmassist/entities"
)

// OpenSQLite opens and migrates the database or exits.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	log.Printf("[db] sqlite ready at %s", path)
	return db
}

// Open opens the database at path and runs migrations. In-memory databases are
// pinned to a single connection so every query sees the same data.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if strings.Contains(path, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// must run before AutoMigrate adds the unique index on user_id
	if err := dedupeProfiles(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.FarmerProfile{},
		&entities.Dataset{},
		&entities.ChatMessage{},
		&entities.KBDocument{},
		&entities.KBChunk{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// dedupeProfiles keeps only the newest profile per user in databases created
// before user_id became unique.
func dedupeProfiles(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='farmer_profiles'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(farmer_profiles)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	hasUser := false
	for _, c := range cols {
		if strings.ToLower(c.Name) == "user_id" {
			hasUser = true
			break
		}
	}
	if !hasUser {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
DELETE FROM farmer_profiles
WHERE profile_id NOT IN (
    SELECT MAX(profile_id) FROM farmer_profiles GROUP BY user_id
)`)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Printf("[db] removed %d duplicate farmer profile(s)", res.RowsAffected)
		}
		return nil
	})
}
