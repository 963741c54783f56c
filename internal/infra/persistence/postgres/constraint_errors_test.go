package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_entitlements_active_actor_course"})
	foreignKey := errors.WithStack(&pgconn.PgError{Code: pgForeignKeyViolation})
	notNull := &pgconn.PgError{Code: pgNotNullViolation}
	plain := errors.New("connection reset by peer")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: duplicate key value (SQLSTATE 23505)")))
	assert.False(t, isUniqueConstraintViolation(plain))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(plain))

	assert.Equal(t, "idx_entitlements_active_actor_course", violatedConstraint(unique))
	assert.Empty(t, violatedConstraint(plain))
}
