package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/adapters/persistence/repositories"
	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/validation"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const settingsCacheTTL = 10 * time.Minute

// SettingsCache is the byte cache kept in front of the settings table
type SettingsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// SettingsService handles the custom lists document
type SettingsService struct {
	repo      repositories.SettingsRepository
	cache     SettingsCache
	validator *validation.Validator
}

// NewSettingsService creates a new settings service. cache may be nil.
func NewSettingsService(repo repositories.SettingsRepository, cache SettingsCache) *SettingsService {
	return &SettingsService{
		repo:      repo,
		cache:     cache,
		validator: validation.New(),
	}
}

// Get returns the stored custom lists, or the defaults when nothing valid is stored
func (s *SettingsService) Get(ctx context.Context) (domain.CustomLists, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, models.SettingKeyCustomLists); ok {
			if lists, err := decodeLists(data); err == nil {
				return lists, nil
			}
		}
	}

	setting, err := s.repo.Get(ctx, models.SettingKeyCustomLists)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultCustomLists(), nil
		}
		return domain.CustomLists{}, fmt.Errorf("load settings: %w", err)
	}

	lists, err := decodeLists(setting.Value)
	if err != nil {
		log.Warn().Err(err).Msg("stored custom lists are malformed, using defaults")
		return domain.DefaultCustomLists(), nil
	}

	s.storeInCache(ctx, lists)
	return lists, nil
}

// Update validates and replaces the whole document, returning what was stored
func (s *SettingsService) Update(ctx context.Context, input domain.CustomLists) (domain.CustomLists, error) {
	if err := s.validator.Validate(input); err != nil {
		return domain.CustomLists{}, err
	}
	lists := input.Normalize()

	data, err := json.Marshal(lists)
	if err != nil {
		return domain.CustomLists{}, fmt.Errorf("encode settings: %w", err)
	}

	setting := &models.Setting{
		Key:   models.SettingKeyCustomLists,
		Value: datatypes.JSON(data),
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return domain.CustomLists{}, fmt.Errorf("save settings: %w", err)
	}

	s.storeInCache(ctx, lists)
	return lists, nil
}

func (s *SettingsService) storeInCache(ctx context.Context, lists domain.CustomLists) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(lists)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, models.SettingKeyCustomLists, data, settingsCacheTTL); err != nil {
		log.Warn().Err(err).Msg("settings cache write failed")
	}
}

// decodeLists parses a stored document and checks its shape
func decodeLists(data []byte) (domain.CustomLists, error) {
	var lists domain.CustomLists
	if err := json.Unmarshal(data, &lists); err != nil {
		return domain.CustomLists{}, err
	}
	if !lists.Valid() {
		return domain.CustomLists{}, errors.New("custom lists document is missing a list")
	}
	return lists.Normalize(), nil
}
