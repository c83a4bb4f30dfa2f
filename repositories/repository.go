package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// The helpers below implement the uniform CRUD every resource store shares.
// Each one is a single statement on a request-scoped session.

func createRecord[T any](ctx context.Context, db *gorm.DB, record *T) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", translateError(err, ErrInvalidReference))
	}
	return nil
}

func findRecord[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var record T
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&record).Error; err != nil {
		return nil, translateError(err, nil)
	}
	return &record, nil
}

func listRecords[T any](ctx context.Context, db *gorm.DB, conds ...interface{}) ([]T, error) {
	records := make([]T, 0)
	query := db.WithContext(ctx)
	if len(conds) > 0 {
		query = query.Where(conds[0], conds[1:]...)
	}
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// updateRecord overwrites the given columns of row id with the values in record.
func updateRecord[T any](ctx context.Context, db *gorm.DB, id uint, record *T, columns ...string) error {
	result := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Select(columns).Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update record: %w", translateError(result.Error, ErrInvalidReference))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteRecord[T any](ctx context.Context, db *gorm.DB, id uint) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", translateError(result.Error, ErrReferenced))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanView runs a joined projection and fails with ErrNotFound when it is empty.
func scanView(query *gorm.DB, dest interface{}) error {
	result := query.Limit(1).Scan(dest)
	if result.Error != nil {
		return fmt.Errorf("failed to load record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanViews(query *gorm.DB, dest interface{}) error {
	if err := query.Scan(dest).Error; err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	return nil
}
