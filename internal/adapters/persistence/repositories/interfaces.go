package repositories

import (
	"context"

	"domainfolio/internal/adapters/persistence/models"
)

// DomainRepository defines domain repository interface.
// Create, Update and Delete each run as one transaction covering the
// domain row and its dependent sale/evaluation rows.
type DomainRepository interface {
	List(ctx context.Context) ([]*models.Domain, error)
	GetByID(ctx context.Context, id uint) (*models.Domain, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, d *models.Domain, sale *models.Sale) error
	Update(ctx context.Context, d *models.Domain, sale *models.Sale) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// SaleRepository defines sale repository interface
type SaleRepository interface {
	ListWithDomain(ctx context.Context) ([]*models.SaleRow, error)
}

// EvaluationRepository defines evaluation repository interface
type EvaluationRepository interface {
	List(ctx context.Context) ([]*models.Evaluation, error)
	Create(ctx context.Context, e *models.Evaluation) error
	Delete(ctx context.Context, id uint) error
}

// SettingsRepository defines settings repository interface
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
