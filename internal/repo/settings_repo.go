// Settings repository functions. Thin persistence only; validation of
// values (font sizes and the like) belongs to the service layer.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
)

// GetSettings loads the settings row for userID. When none exists a default
// row is returned (not persisted): medium font, sound on, light theme.
func GetSettings(ctx context.Context, db *gorm.DB, userID string) (*domain.Settings, error) {
	var s domain.Settings
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Settings{
			UserID:       userID,
			DarkMode:     false,
			FontSize:     domain.FontSizeMedium,
			SoundEnabled: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings writes the settings row for s.UserID, inserting or
// updating as needed.
func UpsertSettings(ctx context.Context, db *gorm.DB, s *domain.Settings) error {
	s.UpdatedAt = time.Now().UTC()
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"dark_mode", "font_size", "sound_enabled", "updated_at"}),
		}).
		Create(s).Error
}
