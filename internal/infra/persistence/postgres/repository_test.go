package postgres

import (
	"context"
	"testing"
	"time"

	"pesantren/internal/domain/entity"
	"pesantren/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockGorm wires a GORM handle onto sqlmock and checks expectations on cleanup.
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var entitlementColumns = []string{
	"id", "actor_id", "course_key", "status", "contribution_amount", "reference", "payment_token", "created_at", "updated_at",
}

func TestEntitlementRepository_FindActive(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	now := time.Now()

	t.Run("returns active entitlement", func(t *testing.T) {
		db, mock := newMockGorm(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "entitlements" WHERE actor_id = \$1 AND course_key = \$2 AND status = \$3`).
			WillReturnRows(sqlmock.NewRows(entitlementColumns).
				AddRow(id.String(), actorID.String(), "bahasa-arab", "active", 25000, "INFAQ-ABC", "stub-1", now, now))

		got, err := NewEntitlementRepository(db).FindActive(ctx, actorID, "bahasa-arab")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.True(t, got.Grants(actorID, "bahasa-arab"))
		assert.Equal(t, int64(25000), got.ContributionAmount)
		assert.Equal(t, "stub-1", got.PaymentToken)
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "entitlements"`).
			WillReturnRows(sqlmock.NewRows(entitlementColumns))

		got, err := NewEntitlementRepository(db).FindActive(ctx, actorID, "bahasa-arab")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrEntitlementNotFound)
	})

	t.Run("wraps driver failure", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "entitlements"`).
			WillReturnError(assert.AnError)

		_, err := NewEntitlementRepository(db).FindActive(ctx, actorID, "bahasa-arab")
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, repository.ErrEntitlementNotFound)
	})
}

func TestEntitlementRepository_Create(t *testing.T) {
	ctx := context.Background()

	newEntitlement := func() *entity.Entitlement {
		return &entity.Entitlement{
			ActorID:            uuid.New(),
			CourseKey:          "bahasa-arab",
			ContributionAmount: 50000,
			Reference:          "INFAQ-XYZ",
		}
	}

	t.Run("fills generated id and defaults status", func(t *testing.T) {
		db, mock := newMockGorm(t)
		id := uuid.New()
		mock.ExpectQuery(`INSERT INTO "entitlements"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

		ent := newEntitlement()
		require.NoError(t, NewEntitlementRepository(db).Create(ctx, ent))
		assert.Equal(t, id, ent.ID)
		assert.Equal(t, entity.EntitlementStatusActive, ent.Status)
		assert.False(t, ent.CreatedAt.IsZero())
	})

	t.Run("active duplicate", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`INSERT INTO "entitlements"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_entitlements_active_actor_course"})

		err := NewEntitlementRepository(db).Create(ctx, newEntitlement())
		assert.ErrorIs(t, err, repository.ErrDuplicateActiveEntitlement)
	})

	t.Run("reference collision", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`INSERT INTO "entitlements"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: referenceConstraint})

		err := NewEntitlementRepository(db).Create(ctx, newEntitlement())
		assert.ErrorIs(t, err, repository.ErrDuplicateReference)
	})
}

func TestEntitlementRepository_FindByActor(t *testing.T) {
	db, mock := newMockGorm(t)
	actorID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "entitlements" WHERE actor_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(entitlementColumns).
			AddRow(uuid.NewString(), actorID.String(), "fiqih", "active", 10000, "INFAQ-2", "", now, now).
			AddRow(uuid.NewString(), actorID.String(), "bahasa-arab", "inactive", 10000, "INFAQ-1", "", now.Add(-time.Hour), now))

	got, err := NewEntitlementRepository(db).FindByActor(context.Background(), actorID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fiqih", got[0].CourseKey)
	assert.False(t, got[1].IsActive())
}

func TestEntitlementRepository_FindByReference(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery(`SELECT \* FROM "entitlements" WHERE reference = \$1`).
		WillReturnRows(sqlmock.NewRows(entitlementColumns))

	_, err := NewEntitlementRepository(db).FindByReference(context.Background(), "INFAQ-NONE")
	assert.ErrorIs(t, err, repository.ErrEntitlementNotFound)
}

var courseColumns = []string{"id", "key", "title", "description", "minimum_contribution", "created_at", "updated_at", "deleted_at"}

func TestCourseRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("find by key", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "courses" WHERE key = \$1 AND "courses"."deleted_at" IS NULL`).
			WillReturnRows(sqlmock.NewRows(courseColumns).
				AddRow(uuid.NewString(), "bahasa-arab", "Bahasa Arab Dasar", "", 15000, now, now, nil))

		got, err := NewCourseRepository(db).FindByKey(ctx, "bahasa-arab")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), got.MinimumContribution)
	})

	t.Run("find by key not found", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "courses"`).
			WillReturnRows(sqlmock.NewRows(courseColumns))

		_, err := NewCourseRepository(db).FindByKey(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrCourseNotFound)
	})

	t.Run("duplicate key", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`INSERT INTO "courses"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := NewCourseRepository(db).Create(ctx, &entity.Course{Key: "bahasa-arab", Title: "Bahasa Arab"})
		assert.ErrorIs(t, err, repository.ErrDuplicateCourse)
	})

	t.Run("list", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "courses" WHERE "courses"."deleted_at" IS NULL ORDER BY title ASC`).
			WillReturnRows(sqlmock.NewRows(courseColumns).
				AddRow(uuid.NewString(), "aqidah", "Aqidah", "", 0, now, now, nil).
				AddRow(uuid.NewString(), "bahasa-arab", "Bahasa Arab", "", 10000, now, now, nil))

		got, err := NewCourseRepository(db).List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

var lessonColumns = []string{
	"id", "course_key", "slug", "title", "summary", "position", "is_free_preview", "blocks", "created_at", "updated_at", "deleted_at",
}

func TestLessonRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("find by slug decodes blocks", func(t *testing.T) {
		db, mock := newMockGorm(t)
		blocks := []byte(`[{"kind":"text","data":{"body":"Alif"}},{"kind":"quiz","data":{"title":"Latihan","questions":[]}}]`)
		mock.ExpectQuery(`SELECT \* FROM "lessons" WHERE \(course_key = \$1 AND slug = \$2\) AND "lessons"."deleted_at" IS NULL`).
			WillReturnRows(sqlmock.NewRows(lessonColumns).
				AddRow(uuid.NewString(), "bahasa-arab", "huruf", "Huruf Hijaiyah", "", 0, true, blocks, now, now, nil))

		got, err := NewLessonRepository(db).FindBySlug(ctx, "bahasa-arab", "huruf")
		require.NoError(t, err)
		assert.True(t, got.IsFreePreview)
		require.Len(t, got.Blocks, 2)
		assert.Equal(t, entity.BlockKindText, got.Blocks[0].Kind())
		quiz, ok := got.Blocks.Quiz(1)
		require.True(t, ok)
		assert.Equal(t, "Latihan", quiz.Title)
	})

	t.Run("corrupt blocks surface an error", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`SELECT \* FROM "lessons"`).
			WillReturnRows(sqlmock.NewRows(lessonColumns).
				AddRow(uuid.NewString(), "bahasa-arab", "huruf", "Huruf", "", 0, false, []byte(`[{"kind":"audio"}]`), now, now, nil))

		_, err := NewLessonRepository(db).FindBySlug(ctx, "bahasa-arab", "huruf")
		assert.ErrorIs(t, err, entity.ErrUnknownBlockKind)
	})

	t.Run("list by course omits blocks", func(t *testing.T) {
		db, mock := newMockGorm(t)
		columns := []string{"id", "course_key", "slug", "title", "summary", "position", "is_free_preview", "created_at", "updated_at", "deleted_at"}
		mock.ExpectQuery(`SELECT .+ FROM "lessons" WHERE course_key = \$1 AND "lessons"."deleted_at" IS NULL ORDER BY position ASC`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.NewString(), "bahasa-arab", "huruf", "Huruf", "", 0, true, now, now, nil).
				AddRow(uuid.NewString(), "bahasa-arab", "harakat", "Harakat", "", 1, false, now, now, nil))

		got, err := NewLessonRepository(db).ListByCourse(ctx, "bahasa-arab")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Empty(t, got[0].Blocks)
		assert.Equal(t, "harakat", got[1].Slug)
	})

	t.Run("create maps foreign key violation", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectQuery(`INSERT INTO "lessons"`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := NewLessonRepository(db).Create(ctx, &entity.Lesson{
			CourseKey: "missing",
			Slug:      "pengantar",
			Title:     "Pengantar",
			Blocks:    entity.Blocks{&entity.TextBlock{Body: "Bismillah"}},
		})
		assert.ErrorIs(t, err, repository.ErrUnknownCourse)
	})

	t.Run("update position", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectExec(`UPDATE "lessons" SET "position"=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewLessonRepository(db).UpdatePosition(ctx, uuid.New(), 3))
	})

	t.Run("update position of unknown lesson", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectExec(`UPDATE "lessons"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewLessonRepository(db).UpdatePosition(ctx, uuid.New(), 3)
		assert.ErrorIs(t, err, repository.ErrLessonNotFound)
	})
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "lessons"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "lessons"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			lessons := factory.NewLessonRepository()
			if err := lessons.UpdatePosition(ctx, uuid.New(), 0); err != nil {
				return err
			}

			return lessons.UpdatePosition(ctx, uuid.New(), 1)
		})
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "lessons"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewLessonRepository().UpdatePosition(ctx, uuid.New(), 0)
		})
		assert.ErrorIs(t, err, repository.ErrLessonNotFound)
	})
}
