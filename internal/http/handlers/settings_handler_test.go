package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
)

func TestGetSettings_ScopedToCaller(t *testing.T) {
	settings := &stubSettings{stored: domain.Settings{DarkMode: true, FontSize: domain.FontSizeLarge, SoundEnabled: true}}
	r := newTestRouter(&stubChat{}, &stubProducts{}, settings)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var got domain.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.UserID != "alice" || !got.DarkMode || got.FontSize != domain.FontSizeLarge {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestUpdateSettings_PartialUpdateKeepsStoredValues(t *testing.T) {
	settings := &stubSettings{stored: domain.Settings{DarkMode: true, FontSize: domain.FontSizeLarge, SoundEnabled: true}}
	r := newTestRouter(&stubChat{}, &stubProducts{}, settings)

	// Only sound_enabled present; dark mode and font size must survive.
	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"sound_enabled":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body=%s", w.Code, w.Body.String())
	}
	if settings.stored.SoundEnabled {
		t.Fatalf("sound_enabled not updated: %+v", settings.stored)
	}
	if !settings.stored.DarkMode || settings.stored.FontSize != domain.FontSizeLarge {
		t.Fatalf("partial update clobbered stored values: %+v", settings.stored)
	}
}

func TestUpdateSettings_InvalidFontSizeIs400(t *testing.T) {
	r := newTestRouter(&stubChat{}, &stubProducts{}, &stubSettings{})

	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"font_size":"enormous"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400; body=%s", w.Code, w.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != ErrCodeBadRequest {
		t.Fatalf("code = %q; want %q", resp.Code, ErrCodeBadRequest)
	}
}

func TestUpdateSettings_MalformedBodyIs400(t *testing.T) {
	r := newTestRouter(&stubChat{}, &stubProducts{}, &stubSettings{})

	req := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}
