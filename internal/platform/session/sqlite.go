package session

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type kvRow struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvRow) TableName() string { return "session_kv" }

// SQLiteStore keeps session state in a SQLite database. With the default
// in-memory DSN it behaves like MemoryStore but survives nothing beyond the
// process, keeping the session-scoped lifetime contract.
type SQLiteStore struct {
	db *gorm.DB
}

func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var row kvRow
	result := s.db.Where("key = ?", key).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if result.Error != nil {
		return nil, false, result.Error
	}
	return row.Value, true, nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	row := kvRow{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func (s *SQLiteStore) Remove(key string) error {
	return s.db.Where("key = ?", key).Delete(&kvRow{}).Error
}

func (s *SQLiteStore) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&kvRow{}).Error
}

func (s *SQLiteStore) Close() error {
	if err := s.Reset(); err != nil {
		return err
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
