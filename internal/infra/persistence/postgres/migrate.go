package postgres

import (
	"context"

	"pesantren/internal/errors"
	"pesantren/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table owned by this service, in dependency order.
func Models() []any {
	return []any{
		&model.CourseModel{},
		&model.LessonModel{},
		&model.EntitlementModel{},
	}
}

// Migrate brings the schema up to date with the GORM models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}
