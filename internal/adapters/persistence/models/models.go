package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire format of every calendar date column
const DateLayout = "2006-01-02"

// FormatDate renders a date column for transport, "" for the zero time
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD wire date as a UTC calendar date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ============================================================
// Portfolio Tables
// ============================================================

// Domain represents domains table
type Domain struct {
	ID             uint         `gorm:"primaryKey"`
	Name           string       `gorm:"uniqueIndex;size:253;not null"`
	Registrar      string       `gorm:"size:100;not null"`
	Category       string       `gorm:"size:100;not null"`
	PurchaseDate   time.Time    `gorm:"type:date;not null"`
	ExpirationDate time.Time    `gorm:"type:date;not null"`
	Status         string       `gorm:"size:20;not null;index"`
	PurchasePrice  *float64     `gorm:"type:decimal(12,2)"`
	CreatedAt      time.Time    `gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime"`
	Sale           *Sale        `gorm:"foreignKey:DomainID"`
	Evaluations    []Evaluation `gorm:"foreignKey:DomainID"`
}

func (Domain) TableName() string {
	return "domains"
}

// DomainResponse DTO
type DomainResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Registrar      string   `json:"registrar"`
	Category       string   `json:"category"`
	PurchaseDate   string   `json:"purchaseDate"`
	ExpirationDate string   `json:"expirationDate"`
	Status         string   `json:"status"`
	PurchasePrice  *float64 `json:"purchasePrice"`
	SaleDate       string   `json:"saleDate,omitempty"`
	SellingPrice   *float64 `json:"sellingPrice,omitempty"`
	Buyer          *string  `json:"buyer,omitempty"`
}

func (d *Domain) ToResponse() *DomainResponse {
	resp := &DomainResponse{
		ID:             d.ID,
		Name:           d.Name,
		Registrar:      d.Registrar,
		Category:       d.Category,
		PurchaseDate:   FormatDate(d.PurchaseDate),
		ExpirationDate: FormatDate(d.ExpirationDate),
		Status:         d.Status,
		PurchasePrice:  d.PurchasePrice,
	}
	if d.Sale != nil {
		price := d.Sale.SellingPrice
		resp.SaleDate = FormatDate(d.Sale.SaleDate)
		resp.SellingPrice = &price
		resp.Buyer = d.Sale.Buyer
	}
	return resp
}

// Sale represents sales table. One row at most per domain.
type Sale struct {
	ID           uint      `gorm:"primaryKey"`
	DomainID     uint      `gorm:"uniqueIndex;not null"`
	SaleDate     time.Time `gorm:"type:date;not null"`
	SellingPrice float64   `gorm:"type:decimal(12,2);not null"`
	Buyer        *string   `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleRow is a sale joined with its owning domain
type SaleRow struct {
	ID           uint
	DomainID     uint
	DomainName   string
	SaleDate     time.Time
	SellingPrice float64
	Buyer        *string
	Registrar    string
	Category     string
}

// SaleResponse DTO
type SaleResponse struct {
	ID           uint    `json:"id"`
	DomainID     uint    `json:"domainId"`
	DomainName   string  `json:"domainName"`
	SaleDate     string  `json:"saleDate"`
	SellingPrice float64 `json:"sellingPrice"`
	Buyer        *string `json:"buyer"`
	Registrar    string  `json:"registrar"`
	Category     string  `json:"category"`
}

func (s *SaleRow) ToResponse() *SaleResponse {
	return &SaleResponse{
		ID:           s.ID,
		DomainID:     s.DomainID,
		DomainName:   s.DomainName,
		SaleDate:     FormatDate(s.SaleDate),
		SellingPrice: s.SellingPrice,
		Buyer:        s.Buyer,
		Registrar:    s.Registrar,
		Category:     s.Category,
	}
}

// Evaluation represents evaluations table
type Evaluation struct {
	ID             uint      `gorm:"primaryKey"`
	DomainID       uint      `gorm:"index;not null"`
	Tool           string    `gorm:"size:100;not null"`
	Date           time.Time `gorm:"type:date;not null"`
	EstimatedValue float64   `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// EvaluationResponse DTO
type EvaluationResponse struct {
	ID             uint    `json:"id"`
	DomainID       uint    `json:"domainId"`
	Tool           string  `json:"tool"`
	Date           string  `json:"date"`
	EstimatedValue float64 `json:"estimatedValue"`
}

func (e *Evaluation) ToResponse() *EvaluationResponse {
	return &EvaluationResponse{
		ID:             e.ID,
		DomainID:       e.DomainID,
		Tool:           e.Tool,
		Date:           FormatDate(e.Date),
		EstimatedValue: e.EstimatedValue,
	}
}

// Setting represents settings table, one JSON document per key
type Setting struct {
	Key       string         `gorm:"column:setting_key;primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"column:setting_value;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}

// SettingKeyCustomLists holds the registrar/category/tool vocabularies
const SettingKeyCustomLists = "customLists"

// ============================================================
// Auth Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Domain{},
		&Sale{},
		&Evaluation{},
		&Setting{},
	)
}
