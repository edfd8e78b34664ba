package config

import (
	"encoding/json"
	"errors"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/password"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder handles database seeding
type Seeder struct {
	db    *gorm.DB
	admin AdminConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, admin AdminConfig) *Seeder {
	return &Seeder{db: db, admin: admin}
}

// Run executes all seeders. Each one is idempotent.
func (s *Seeder) Run() error {
	log.Info().Msg("running database seeders")

	if err := s.seedAdminUser(); err != nil {
		return err
	}
	if err := s.seedCustomLists(); err != nil {
		return err
	}

	log.Info().Msg("database seeding completed")
	return nil
}

// seedAdminUser creates the bootstrap account unless it exists
func (s *Seeder) seedAdminUser() error {
	if s.admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := s.db.Where("username = ?", s.admin.Username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := password.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: s.admin.Username,
		Email:    s.admin.Email,
		Password: hashedPassword,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Info().Str("username", admin.Username).Msg("admin user created")
	return nil
}

// seedCustomLists stores the default vocabularies when none are saved
func (s *Seeder) seedCustomLists() error {
	data, err := json.Marshal(domain.DefaultCustomLists())
	if err != nil {
		return err
	}

	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Setting{
		Key:   models.SettingKeyCustomLists,
		Value: datatypes.JSON(data),
	}).Error
}
