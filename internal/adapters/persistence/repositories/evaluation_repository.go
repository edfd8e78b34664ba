package repositories

import (
	"context"

	"domainfolio/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// evaluationRepository implements EvaluationRepository interface
type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

// List lists all evaluations
func (r *evaluationRepository) List(ctx context.Context) ([]*models.Evaluation, error) {
	var evaluations []*models.Evaluation
	err := r.db.WithContext(ctx).Order("id ASC").Find(&evaluations).Error
	return evaluations, err
}

// Create creates a new evaluation
func (r *evaluationRepository) Create(ctx context.Context, e *models.Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Delete deletes an evaluation; missing ids are a no-op
func (r *evaluationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Evaluation{}).Error
}
