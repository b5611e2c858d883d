// Chat HTTP handlers.
//
// This file exposes the conversation surface:
//   - POST   /sessions                      (open a session)
//   - GET    /sessions/{id}/messages        (transcript, paginated)
//   - POST   /sessions/{id}/messages        (submit a turn)
//   - POST   /sessions/{id}/images          (submit an image upload)
//
// Handlers are transport-thin: they validate input, call the orchestrator,
// and translate results into HTTP responses. All resolution failures below
// the orchestrator are already converted into normal assistant messages, so
// the only error responses here are validation and unknown-session cases.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/services"
	"github.com/aliconnects/go-shop-assistant/internal/sysutil"
	"github.com/aliconnects/go-shop-assistant/internal/utils"
)

// ChatService defines the orchestration operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type ChatService interface {
	// CreateSession opens a session and returns its id and seed transcript.
	CreateSession(ctx context.Context) (string, domain.Transcript)
	// Transcript returns the session's conversation history.
	Transcript(sessionID string) (domain.Transcript, error)
	// HandleTurn resolves one user utterance into the final assistant message.
	HandleTurn(ctx context.Context, sessionID, content string) (domain.Message, error)
	// HandleImage records an image upload and returns the acknowledgement.
	HandleImage(ctx context.Context, sessionID, imageRef string) (domain.Message, error)
}

// SettingsService defines the settings operations consumed by handlers.
type SettingsService interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error)
}

// ProductService defines the read-only product surface.
type ProductService interface {
	GetAll(ctx context.Context) []domain.Product
	Search(ctx context.Context, query string) []domain.Product
	GetFeatured(ctx context.Context) []domain.Product
	GetCategories(ctx context.Context) []domain.Category
}

// Handlers groups the HTTP endpoints of the assistant API.
type Handlers struct {
	chatSvc     ChatService
	productSvc  ProductService
	settingsSvc SettingsService
}

// New constructs a Handlers instance bound to the given services.
func New(chatSvc ChatService, productSvc ProductService, settingsSvc SettingsService) *Handlers {
	return &Handlers{chatSvc: chatSvc, productSvc: productSvc, settingsSvc: settingsSvc}
}

// userID extracts the caller identity from the Gin context (set by upstream
// middleware), falling back to the X-User-ID header and finally to
// "demo-user". The assistant has no authentication; the id only scopes
// settings rows.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return sysutil.FirstNonEmpty(c.GetHeader("X-User-ID"), "demo-user")
}

//
// DTOs
//

// TurnRequest is the JSON payload for submitting a user turn.
type TurnRequest struct {
	Content string `json:"content" binding:"required"`
}

// ImageRequest is the JSON payload for an image upload turn.
type ImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	ID       string           `json:"id"`
	Messages []domain.Message `json:"messages"`
}

// TranscriptResponse is a page of a session transcript.
type TranscriptResponse struct {
	Items []domain.Message `json:"items"`
	Total int              `json:"total"`
}

//
// Endpoints
//

// CreateSession opens a new conversation seeded with the welcome messages.
func (h *Handlers) CreateSession(c *gin.Context) {
	id, transcript := h.chatSvc.CreateSession(c.Request.Context())
	ok(c, http.StatusCreated, SessionResponse{ID: id, Messages: transcript})
}

// ListMessages returns the transcript of a session. Supports limit/offset
// query parameters; by default the whole transcript is returned.
func (h *Handlers) ListMessages(c *gin.Context) {
	transcript, err := h.chatSvc.Transcript(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		return
	}

	total := len(transcript)
	offset, end := clampTranscriptPage(c, total)

	ok(c, http.StatusOK, TranscriptResponse{Items: transcript[offset:end], Total: total})
}

// clampTranscriptPage parses offset/limit from query parameters and returns
// validated slice bounds over a transcript of length total. Arbitrary query
// values cannot overflow or produce an inverted range. By default the whole
// transcript is returned.
func clampTranscriptPage(c *gin.Context, total int) (offset, end int) {
	return utils.ClampRange(
		utils.AtoiDefault(c.Query("offset"), 0),
		utils.AtoiDefault(c.Query("limit"), total),
		total,
	)
}

// PostMessage submits a user turn and returns the final assistant message.
func (h *Handlers) PostMessage(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		return
	}

	ctx := services.WithCaller(c.Request.Context(), userID(c))
	msg, err := h.chatSvc.HandleTurn(ctx, c.Param("id"), req.Content)
	switch {
	case err == nil:
		ok(c, http.StatusCreated, msg)
	case errors.Is(err, services.ErrSessionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
	case errors.Is(err, services.ErrEmptyPrompt), errors.Is(err, services.ErrTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeTurnFailed, "could not resolve turn")
	}
}

// PostImage records an image upload in the transcript.
func (h *Handlers) PostImage(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "image is required")
		return
	}

	ctx := services.WithCaller(c.Request.Context(), userID(c))
	msg, err := h.chatSvc.HandleImage(ctx, c.Param("id"), req.Image)
	switch {
	case err == nil:
		ok(c, http.StatusCreated, msg)
	case errors.Is(err, services.ErrSessionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid image reference")
	}
}
