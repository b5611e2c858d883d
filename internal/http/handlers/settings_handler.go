package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/services"
)

// SettingsRequest is the JSON payload for updating user settings. Pointer
// fields distinguish "not provided" from zero values so partial updates keep
// the stored value.
type SettingsRequest struct {
	DarkMode     *bool   `json:"dark_mode"`
	FontSize     *string `json:"font_size"`
	SoundEnabled *bool   `json:"sound_enabled"`
}

// GetSettings returns the stored settings for the caller, or the defaults
// when nothing has been saved yet.
func (h *Handlers) GetSettings(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSettingsFailed, "could not load settings")
		return
	}
	ok(c, http.StatusOK, settings)
}

// UpdateSettings applies a partial settings update for the caller.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid settings payload")
		return
	}

	ctx := c.Request.Context()
	uid := userID(c)

	current, err := h.settingsSvc.Get(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSettingsFailed, "could not load settings")
		return
	}

	next := domain.Settings{
		UserID:       uid,
		DarkMode:     current.DarkMode,
		FontSize:     current.FontSize,
		SoundEnabled: current.SoundEnabled,
	}
	if req.DarkMode != nil {
		next.DarkMode = *req.DarkMode
	}
	if req.FontSize != nil {
		next.FontSize = *req.FontSize
	}
	if req.SoundEnabled != nil {
		next.SoundEnabled = *req.SoundEnabled
	}

	saved, err := h.settingsSvc.Update(ctx, &next)
	switch {
	case err == nil:
		ok(c, http.StatusOK, saved)
	case errors.Is(err, services.ErrInvalidFontSize):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeSettingsFailed, "could not save settings")
	}
}
