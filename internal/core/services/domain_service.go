package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/core/domain"
	"domainfolio/internal/core/portfolio"
	"domainfolio/internal/pkg/metrics"
	"domainfolio/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DomainInput is the full desired state of a domain and its optional sale
type DomainInput struct {
	Name           string   `json:"name" validate:"required,max=253"`
	Registrar      string   `json:"registrar" validate:"required,max=100"`
	Category       string   `json:"category" validate:"required,max=100"`
	PurchaseDate   string   `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	ExpirationDate string   `json:"expirationDate" validate:"required,datetime=2006-01-02"`
	Status         string   `json:"status" validate:"required"`
	PurchasePrice  *float64 `json:"purchasePrice" validate:"omitempty,gte=0"`
	SaleDate       string   `json:"saleDate" validate:"omitempty,datetime=2006-01-02"`
	SellingPrice   *float64 `json:"sellingPrice" validate:"omitempty,gte=0"`
	Buyer          *string  `json:"buyer" validate:"omitempty,max=255"`
}

// DomainService handles the domain write path and list views
type DomainService struct {
	domainRepo repositories.DomainRepository
	settings   *SettingsService
	validator  *validation.Validator
	now        func() time.Time
}

// NewDomainService creates a new domain service
func NewDomainService(domainRepo repositories.DomainRepository, settings *SettingsService) *DomainService {
	return &DomainService{
		domainRepo: domainRepo,
		settings:   settings,
		validator:  validation.New(),
		now:        time.Now,
	}
}

// List returns every domain, newest first
func (s *DomainService) List(ctx context.Context) ([]*models.DomainResponse, error) {
	domains, err := s.domainRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}

	list := make([]*models.DomainResponse, 0, len(domains))
	for _, d := range domains {
		list = append(list, d.ToResponse())
	}
	return list, nil
}

// Create persists a new domain, and its sale when the input qualifies
func (s *DomainService) Create(ctx context.Context, input *DomainInput) (*models.DomainResponse, error) {
	d, sale, err := s.build(input)
	if err != nil {
		return nil, err
	}

	err = s.domainRepo.Create(ctx, d, sale)
	metrics.DomainWrites.WithLabelValues("create", metrics.Result(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDomain) {
			return nil, err
		}
		return nil, fmt.Errorf("create domain: %w", err)
	}

	log.Debug().Uint("domain_id", d.ID).Str("name", d.Name).Bool("sale", sale != nil).Msg("domain created")
	return d.ToResponse(), nil
}

// Update replaces domain id with input. An unknown id writes nothing and
// echoes the input back.
func (s *DomainService) Update(ctx context.Context, id uint, input *DomainInput) (*models.DomainResponse, error) {
	d, sale, err := s.build(input)
	if err != nil {
		return nil, err
	}
	d.ID = id

	found, err := s.domainRepo.Update(ctx, d, sale)
	metrics.DomainWrites.WithLabelValues("update", metrics.Result(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDomain) {
			return nil, err
		}
		return nil, fmt.Errorf("update domain %d: %w", id, err)
	}
	if !found {
		log.Debug().Uint("domain_id", id).Msg("update of unknown domain ignored")
		d.Sale = sale
	}

	return d.ToResponse(), nil
}

// Delete removes a domain with its sale and evaluations. Unknown ids succeed.
func (s *DomainService) Delete(ctx context.Context, id uint) error {
	err := s.domainRepo.Delete(ctx, id)
	metrics.DomainWrites.WithLabelValues("delete", metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("delete domain %d: %w", id, err)
	}
	return nil
}

// View returns the domains visible through v, in v's sort order
func (s *DomainService) View(ctx context.Context, v portfolio.View) ([]*models.DomainResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return v.Apply(list), nil
}

var csvHeader = []string{
	"Name", "Registrar", "Category", "Purchase Date", "Expiration Date",
	"Status", "Purchase Price", "Selling Price", "Sale Date", "Buyer",
}

// ExportCSV writes the domains visible through v as CSV. A non-empty
// selection restricts the export to the selected domains.
func (s *DomainService) ExportCSV(ctx context.Context, w io.Writer, v portfolio.View) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	rows := v.Apply(list)
	if v.Selection.Len() > 0 {
		rows = v.Selected(list)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, d := range rows {
		buyer := ""
		if d.Buyer != nil {
			buyer = *d.Buyer
		}
		record := []string{
			csvText(d.Name), csvText(d.Registrar), csvText(d.Category), d.PurchaseDate, d.ExpirationDate,
			d.Status, formatAmount(d.PurchasePrice), formatAmount(d.SellingPrice), d.SaleDate, csvText(buyer),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// csvText quotes free text that a spreadsheet would evaluate as a formula
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// build validates input and computes the domain row and the sale row it implies
func (s *DomainService) build(input *DomainInput) (*models.Domain, *models.Sale, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Registrar = strings.TrimSpace(input.Registrar)
	input.Category = strings.TrimSpace(input.Category)

	if err := s.validator.Validate(input); err != nil {
		return nil, nil, err
	}

	status, ok := domain.ParseStatus(input.Status)
	if !ok {
		return nil, nil, &validation.Error{Fields: map[string]string{
			"status": "must be one of: actif vendu expire en-vente",
		}}
	}

	// formats were checked by the validator
	purchaseDate, _ := models.ParseDate(input.PurchaseDate)
	expirationDate, _ := models.ParseDate(input.ExpirationDate)

	d := &models.Domain{
		Name:           input.Name,
		Registrar:      input.Registrar,
		Category:       input.Category,
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
		Status:         string(status),
		PurchasePrice:  input.PurchasePrice,
	}

	return d, saleFor(status, input), nil
}

// saleFor returns the sale row a domain in this state owns, or nil
func saleFor(status domain.Status, input *DomainInput) *models.Sale {
	if status != domain.StatusSold || input.SaleDate == "" || input.SellingPrice == nil || *input.SellingPrice <= 0 {
		return nil
	}

	saleDate, err := models.ParseDate(input.SaleDate)
	if err != nil {
		return nil
	}

	var buyer *string
	if input.Buyer != nil && strings.TrimSpace(*input.Buyer) != "" {
		b := strings.TrimSpace(*input.Buyer)
		buyer = &b
	}

	return &models.Sale{
		SaleDate:     saleDate,
		SellingPrice: *input.SellingPrice,
		Buyer:        buyer,
	}
}

// inputFromModel rebuilds the full input of a stored domain, sale included
func inputFromModel(d *models.Domain) *DomainInput {
	input := &DomainInput{
		Name:           d.Name,
		Registrar:      d.Registrar,
		Category:       d.Category,
		PurchaseDate:   models.FormatDate(d.PurchaseDate),
		ExpirationDate: models.FormatDate(d.ExpirationDate),
		Status:         d.Status,
		PurchasePrice:  d.PurchasePrice,
	}
	if d.Sale != nil {
		price := d.Sale.SellingPrice
		input.SaleDate = models.FormatDate(d.Sale.SaleDate)
		input.SellingPrice = &price
		input.Buyer = d.Sale.Buyer
	}
	return input
}

func formatAmount(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
