// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pesantren/internal/domain/entity"
	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/repository"
	"pesantren/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const referenceConstraint = "idx_entitlements_reference"

// entitlementRepository implements the repository.EntitlementRepository interface.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// FindActive retrieves the active entitlement for an actor and course.
func (repo *entitlementRepository) FindActive(ctx context.Context, actorID uuid.UUID, courseKey string) (*entity.Entitlement, error) {
	var entitlementM model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("actor_id = ? AND course_key = ? AND status = ?", actorID, courseKey, string(entity.EntitlementStatusActive)).
		First(&entitlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find active entitlement")
	}

	return toEntitlementDomain(&entitlementM), nil
}

// Create persists a new entitlement.
func (repo *entitlementRepository) Create(ctx context.Context, entitlement *entity.Entitlement) error {
	if entitlement.Status == "" {
		entitlement.Status = entity.EntitlementStatusActive
	}
	entitlementM := fromEntitlementDomain(entitlement)

	if err := repo.db.WithContext(ctx).Create(entitlementM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == referenceConstraint {
				return repository.ErrDuplicateReference
			}

			return repository.ErrDuplicateActiveEntitlement
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entitlement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entitlement")
	}

	entitlement.ID = entitlementM.ID
	entitlement.CreatedAt = entitlementM.CreatedAt

	return nil
}

// FindByReference retrieves an entitlement by its reference.
func (repo *entitlementRepository) FindByReference(ctx context.Context, reference string) (*entity.Entitlement, error) {
	var entitlementM model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&entitlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntitlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find entitlement by reference")
	}

	return toEntitlementDomain(&entitlementM), nil
}

// FindByActor retrieves every entitlement of an actor, newest first.
func (repo *entitlementRepository) FindByActor(ctx context.Context, actorID uuid.UUID) ([]*entity.Entitlement, error) {
	var entitlementModels []*model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Find(&entitlementModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entitlements by actor")
	}

	entitlements := make([]*entity.Entitlement, 0, len(entitlementModels))
	for _, entitlementM := range entitlementModels {
		entitlements = append(entitlements, toEntitlementDomain(entitlementM))
	}

	return entitlements, nil
}

// --- Mapper Functions ---

func toEntitlementDomain(data *model.EntitlementModel) *entity.Entitlement {
	if data == nil {
		return nil
	}

	return &entity.Entitlement{
		ID:                 data.ID,
		ActorID:            data.ActorID,
		CourseKey:          data.CourseKey,
		Status:             entity.EntitlementStatus(data.Status),
		ContributionAmount: data.ContributionAmount,
		Reference:          data.Reference,
		PaymentToken:       data.PaymentToken,
		CreatedAt:          data.CreatedAt,
	}
}

func fromEntitlementDomain(data *entity.Entitlement) *model.EntitlementModel {
	if data == nil {
		return nil
	}

	return &model.EntitlementModel{
		ID:                 data.ID,
		ActorID:            data.ActorID,
		CourseKey:          data.CourseKey,
		Status:             string(data.Status),
		ContributionAmount: data.ContributionAmount,
		Reference:          data.Reference,
		PaymentToken:       data.PaymentToken,
		CreatedAt:          data.CreatedAt,
	}
}
