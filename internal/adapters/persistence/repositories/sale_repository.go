package repositories

import (
	"context"

	"domainfolio/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// saleRepository implements SaleRepository interface
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// ListWithDomain returns every sale joined with its owning domain.
// Sales whose domain is gone are excluded by the inner join.
func (r *saleRepository) ListWithDomain(ctx context.Context) ([]*models.SaleRow, error) {
	var rows []*models.SaleRow
	err := r.db.WithContext(ctx).
		Table("sales AS s").
		Select("s.id, s.domain_id, d.name AS domain_name, s.sale_date, s.selling_price, s.buyer, d.registrar, d.category").
		Joins("JOIN domains d ON s.domain_id = d.id").
		Order("s.id ASC").
		Scan(&rows).Error
	return rows, err
}
