package db

import (
	"fmt"

	"github.com/asteroid-belt/identicon/internal/models"
)

// DefaultHistoryLimit is used by ListGenerations when limit is not positive.
const DefaultHistoryLimit = 20

// RecordGeneration stores one generated identicon.
func (db *DB) RecordGeneration(g models.Generation) error {
	if err := db.Create(&g).Error; err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// ListGenerations returns the most recent generations, newest first.
func (db *DB) ListGenerations(limit int) ([]models.Generation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var gens []models.Generation
	err := db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&gens).Error
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return gens, nil
}

// CountGenerations returns the number of recorded generations.
func (db *DB) CountGenerations() (int64, error) {
	var n int64
	if err := db.Model(&models.Generation{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}
	return n, nil
}

// ClearGenerations deletes all recorded generations and returns how many were removed.
func (db *DB) ClearGenerations() (int64, error) {
	result := db.Where("1 = 1").Delete(&models.Generation{})
	if result.Error != nil {
		return 0, fmt.Errorf("clear generations: %w", result.Error)
	}
	return result.RowsAffected, nil
}
