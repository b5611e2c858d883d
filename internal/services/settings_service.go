// Package services – SettingsService
//
// Manages the persisted presentation preferences (dark mode, font size,
// sound cues). Read at session start by the UI collaborator and written on
// every change. The sound-enabled flag is also what gates the notifier used
// for message cues.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/repo"
)

// SettingsService validates and persists user settings.
type SettingsService struct {
	DB *gorm.DB
}

// Get returns the stored settings for userID, or defaults when none exist.
func (s *SettingsService) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	return repo.GetSettings(ctx, s.DB, userID)
}

// Update validates and stores the given settings.
func (s *SettingsService) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	switch settings.FontSize {
	case domain.FontSizeSmall, domain.FontSizeMedium, domain.FontSizeLarge, domain.FontSizeXLarge:
	case "":
		settings.FontSize = domain.FontSizeMedium
	default:
		return nil, ErrInvalidFontSize
	}
	if err := repo.UpsertSettings(ctx, s.DB, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// SoundEnabled reports whether sound cues should fire for userID. Lookup
// failures default to enabled; the cue is cosmetic.
func (s *SettingsService) SoundEnabled(ctx context.Context, userID string) bool {
	settings, err := repo.GetSettings(ctx, s.DB, userID)
	if err != nil {
		return true
	}
	return settings.SoundEnabled
}
