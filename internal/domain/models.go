// Package domain defines the core data model of the storefront assistant:
// products and category descriptors served by the repository, in-memory chat
// messages, and the persisted user settings. Settings is the only type mapped
// with GORM; conversation state deliberately never touches the database.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item in the normalized shape served to callers.
// Records are read-only within a session; malformed upstream fields are
// defaulted during transformation (price 0, empty image/description).
//
// Fields:
//   - ID: catalog identifier of the product.
//   - Name: display name.
//   - Price: non-negative amount in store currency.
//   - Image: URL of the primary product image, empty when absent.
//   - URL: permalink to the product page.
//   - Description: short descriptive text, possibly empty.
//   - Categories: tag names the product belongs to.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// Category describes one product category as exposed by the catalog API or
// derived from product tags when the API is unreachable.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Valid font sizes for the settings surface.
const (
	FontSizeSmall  = "small"
	FontSizeMedium = "medium"
	FontSizeLarge  = "large"
	FontSizeXLarge = "xlarge"
)

// Settings holds the per-user presentation preferences persisted across
// sessions: dark mode, font size, and whether sound cues play.
//
// Fields:
//   - UserID: owner of the settings row (primary key).
//   - DarkMode: dark theme toggle.
//   - FontSize: one of small|medium|large|xlarge.
//   - SoundEnabled: whether message sound cues should fire.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type Settings struct {
	UserID       string         `json:"user_id"       gorm:"type:varchar(64);primaryKey"`
	DarkMode     bool           `json:"dark_mode"     gorm:"not null;default:false"`
	FontSize     string         `json:"font_size"     gorm:"type:varchar(16);not null;default:'medium';check:font_size IN ('small','medium','large','xlarge')"`
	// No column default: GORM omits zero-valued fields carrying a default
	// tag from the INSERT, which would silently turn false back into true.
	// The unset-row default lives in repo.GetSettings instead.
	SoundEnabled bool           `json:"sound_enabled" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"             gorm:"index"`
}

// TableName returns the database table name for Settings.
func (Settings) TableName() string { return "settings" }
