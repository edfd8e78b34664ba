package repositories

import (
	"context"
	"errors"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// domainRepository implements DomainRepository interface
type domainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a new domain repository
func NewDomainRepository(db *gorm.DB) DomainRepository {
	return &domainRepository{db: db}
}

// List returns every domain with its sale, newest first
func (r *domainRepository) List(ctx context.Context) ([]*models.Domain, error) {
	var domains []*models.Domain
	err := r.db.WithContext(ctx).Preload("Sale").Order("id DESC").Find(&domains).Error
	return domains, err
}

// GetByID gets a domain with its sale
func (r *domainRepository) GetByID(ctx context.Context, id uint) (*models.Domain, error) {
	var d models.Domain
	err := r.db.WithContext(ctx).Preload("Sale").Where("id = ?", id).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Exists checks if a domain id is present
func (r *domainRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Domain{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts the domain and, when sale is non-nil, its sale row.
// Fails with domain.ErrDuplicateDomain if the name is taken.
func (r *domainRepository) Create(ctx context.Context, d *models.Domain, sale *models.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, d.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateDomain
		}

		if err := tx.Omit(clause.Associations).Create(d).Error; err != nil {
			return translateError(err)
		}

		if sale != nil {
			sale.DomainID = d.ID
			if err := tx.Create(sale).Error; err != nil {
				return err
			}
		}
		d.Sale = sale
		return nil
	})
}

// Update rewrites the domain row, drops its sale and inserts sale when non-nil.
// Returns false without writing anything if the id does not exist.
func (r *domainRepository) Update(ctx context.Context, d *models.Domain, sale *models.Sale) (bool, error) {
	found := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Domain{}).Where("id = ?", d.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		found = true

		taken, err := nameTaken(tx, d.Name, d.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateDomain
		}

		err = tx.Model(&models.Domain{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
			"name":            d.Name,
			"registrar":       d.Registrar,
			"category":        d.Category,
			"purchase_date":   d.PurchaseDate,
			"expiration_date": d.ExpirationDate,
			"status":          d.Status,
			"purchase_price":  d.PurchasePrice,
		}).Error
		if err != nil {
			return translateError(err)
		}

		if err := tx.Where("domain_id = ?", d.ID).Delete(&models.Sale{}).Error; err != nil {
			return err
		}

		if sale != nil {
			sale.ID = 0
			sale.DomainID = d.ID
			if err := tx.Create(sale).Error; err != nil {
				return err
			}
		}
		d.Sale = sale
		return nil
	})

	return found, err
}

// Delete removes the domain with its evaluations and sale. Missing ids are a no-op.
func (r *domainRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("domain_id = ?", id).Delete(&models.Evaluation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("domain_id = ?", id).Delete(&models.Sale{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Domain{}).Error
	})
}

// nameTaken reports whether another domain (id != exceptID) uses name
func nameTaken(tx *gorm.DB, name string, exceptID uint) (bool, error) {
	var count int64
	q := tx.Model(&models.Domain{}).Where("name = ?", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateError maps a unique-key violation on domains.name to a conflict
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateDomain
	}
	return err
}
