package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record holds one serialized collection.
type Record struct {
	Collection string `gorm:"primaryKey"`
	Payload    string `gorm:"not null"`
	UpdatedAt  time.Time
}

// OpenSQLite opens the database at path and migrates the records table.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate records: %w", err)
	}
	return db, nil
}

// SQLStore keeps a collection as a JSON payload in one row of the records
// table.
type SQLStore[T any] struct {
	db         *gorm.DB
	collection string
}

// NewSQLStore returns a store for the named collection.
func NewSQLStore[T any](db *gorm.DB, collection string) *SQLStore[T] {
	return &SQLStore[T]{db: db, collection: collection}
}

// Load reads the collection. A missing row yields no items.
func (s *SQLStore[T]) Load() ([]T, error) {
	var rec Record
	err := s.db.Where("collection = ?", s.collection).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.collection, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(rec.Payload), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.collection, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save upserts the collection row.
func (s *SQLStore[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.collection, err)
	}
	rec := Record{Collection: s.collection, Payload: string(payload), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", s.collection, err)
	}
	return nil
}
