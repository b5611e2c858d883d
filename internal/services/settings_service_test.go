package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/repo"
)

func newSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:settingssvc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestSettings_Update_RejectsInvalidFontSize(t *testing.T) {
	svc := &SettingsService{DB: newSettingsTestDB(t)}

	_, err := svc.Update(context.Background(), &domain.Settings{UserID: "u1", FontSize: "enormous"})
	if !errors.Is(err, ErrInvalidFontSize) {
		t.Fatalf("err = %v; want ErrInvalidFontSize", err)
	}
}

func TestSettings_Update_EmptyFontSizeDefaultsToMedium(t *testing.T) {
	svc := &SettingsService{DB: newSettingsTestDB(t)}

	got, err := svc.Update(context.Background(), &domain.Settings{UserID: "u1", SoundEnabled: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.FontSize != domain.FontSizeMedium {
		t.Fatalf("FontSize = %q; want medium", got.FontSize)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	svc := &SettingsService{DB: newSettingsTestDB(t)}
	ctx := context.Background()

	if _, err := svc.Update(ctx, &domain.Settings{UserID: "u1", DarkMode: true, FontSize: domain.FontSizeLarge}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.DarkMode || got.FontSize != domain.FontSizeLarge {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSettings_SoundEnabled(t *testing.T) {
	svc := &SettingsService{DB: newSettingsTestDB(t)}
	ctx := context.Background()

	// No row yet: defaults to enabled.
	if !svc.SoundEnabled(ctx, "u1") {
		t.Fatalf("SoundEnabled without a row = false; want true")
	}

	if _, err := svc.Update(ctx, &domain.Settings{UserID: "u1", FontSize: domain.FontSizeMedium, SoundEnabled: false}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if svc.SoundEnabled(ctx, "u1") {
		t.Fatalf("SoundEnabled after muting = true; want false")
	}
}
