// Package services – ChatService
//
// This file implements the ChatService, the per-turn response orchestrator.
// It owns the in-memory sessions and drives the full turn lifecycle: append
// the user message, insert a transient "Thinking..." placeholder, resolve a
// route through the classifier, dispatch to the matching producer (policy
// text, repository search, or the model gateway), then atomically swap the
// placeholder for the final reply.
//
// Transcript discipline: a turn's placeholder insert always precedes its own
// replace, and the replace targets the placeholder id recorded at insert
// time, so out-of-order completions across turns cannot corrupt the
// transcript. Replacing an id that is no longer present is a safe no-op and
// produces no reply. A turn therefore yields exactly one assistant message
// and leaves no placeholder behind.
//
// Degraded mode: any gateway failure flips the session's modelHealthy flag
// to false and the same turn is re-resolved through the local heuristic
// responder. The flag is sticky for the rest of the session; while false the
// remote path is never attempted, so nothing can flip it back.
package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/domain"
	"github.com/aliconnects/go-shop-assistant/internal/groq"
	"github.com/aliconnects/go-shop-assistant/internal/observability"
)

// Sound cue events emitted through the Notifier port.
const (
	CueSent     = "sent"
	CueReceived = "received"
)

// Welcome messages seeded into every new session.
const (
	welcomeFirst  = "Hi there! 👋 Welcome to AliConnects Shopping Assistant. How can I help you today?"
	welcomeSecond = "You can ask me about our products, shipping policies, or anything else about our store!"
)

const imageAckReply = "Thanks for sharing this image. Let me know if you'd like help finding similar products!"

// DefaultThinkingDelay is the cosmetic pacing applied before locally
// resolved routes finalize, so the UI shows a perceptible thinking interval.
// It is pacing, not a timeout: it never bounds or cancels a lookup.
const DefaultThinkingDelay = 500 * time.Millisecond

// Completer is the model-gateway seam consumed by the orchestrator.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, utterance string) (string, error)
}

// Notifier receives fire-and-forget sound cues after state is finalized.
// Implementations must not block; the orchestrator never awaits them and
// they carry no lifecycle significance.
type Notifier interface {
	Notify(ctx context.Context, event string)
}

// NopNotifier discards all cues.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(context.Context, string) {}

// callerKey carries the request user identity through turn contexts so ports
// behind the orchestrator (sound cues) can resolve per-user preferences.
type callerKey struct{}

// WithCaller returns a context carrying the caller identity.
func WithCaller(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerKey{}, userID)
}

// CallerFrom returns the identity attached by WithCaller, or "" when none is
// present.
func CallerFrom(ctx context.Context) string {
	if v, ok := ctx.Value(callerKey{}).(string); ok {
		return v
	}
	return ""
}

// session is the mutable state of one conversation.
type session struct {
	mu                   sync.Mutex
	transcript           domain.Transcript
	pendingPlaceholderID string
	modelHealthy         bool
}

// ChatService orchestrates turns over in-memory sessions.
type ChatService struct {
	Products   *ProductService
	Classifier *Classifier
	Gateway    Completer
	Notifier   Notifier
	Info       catalog.StoreInfo

	// ThinkingDelay paces locally resolved routes. Zero means
	// DefaultThinkingDelay; negative disables the delay (tests).
	ThinkingDelay time.Duration

	// MaxPromptRunes rejects oversized utterances when > 0.
	MaxPromptRunes int

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewChatService wires an orchestrator over its collaborators. gateway may
// be nil, in which case every free-form turn uses the local responder.
func NewChatService(products *ProductService, classifier *Classifier, gateway Completer, info catalog.StoreInfo) *ChatService {
	return &ChatService{
		Products:   products,
		Classifier: classifier,
		Gateway:    gateway,
		Notifier:   NopNotifier{},
		Info:       info,
		sessions:   make(map[string]*session),
	}
}

// CreateSession opens a new session seeded with the welcome messages and
// returns its id and initial transcript.
func (s *ChatService) CreateSession(ctx context.Context) (string, domain.Transcript) {
	_ = ctx
	now := time.Now().UTC()
	sess := &session{
		modelHealthy: true,
		transcript: domain.Transcript{
			{ID: uuid.NewString(), Content: welcomeFirst, Sender: domain.SenderAssistant, Timestamp: now},
			{ID: uuid.NewString(), Content: welcomeSecond, Sender: domain.SenderAssistant, Timestamp: now.Add(time.Millisecond)},
		},
	}
	id := uuid.NewString()

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[string]*session)
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	return id, append(domain.Transcript(nil), sess.transcript...)
}

// Transcript returns a copy of the session's current transcript.
func (s *ChatService) Transcript(sessionID string) (domain.Transcript, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return append(domain.Transcript(nil), sess.transcript...), nil
}

// ModelHealthy reports whether the session still attempts the remote path.
func (s *ChatService) ModelHealthy(sessionID string) (bool, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return false, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.modelHealthy, nil
}

// HandleTurn runs the full turn protocol for one user utterance and returns
// the final assistant message. Catalog and gateway failures never surface
// here; the only errors are input validation and an unknown session.
func (s *ChatService) HandleTurn(ctx context.Context, sessionID, content string) (domain.Message, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "HandleTurn",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, ErrEmptyPrompt
	}
	if s.MaxPromptRunes > 0 && utf8.RuneCountInString(content) > s.MaxPromptRunes {
		return domain.Message{}, ErrTooLong
	}

	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Message{}, err
	}

	// Steps 1–2: user message, then placeholder.
	placeholderID := uuid.NewString()
	sess.mu.Lock()
	sess.transcript = domain.Append(sess.transcript, domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
	})
	sess.transcript = domain.Append(sess.transcript, domain.Message{
		ID:        placeholderID,
		Content:   domain.ThinkingContent,
		Sender:    domain.SenderAssistant,
		Timestamp: time.Now().UTC(),
	})
	sess.pendingPlaceholderID = placeholderID
	sess.mu.Unlock()

	s.notifier().Notify(ctx, CueSent)

	// Step 3: route resolution.
	route := s.Classifier.Classify(content)
	span.SetAttributes(attribute.String("route", route.Kind.String()))
	observability.Turns.WithLabelValues(route.Kind.String()).Inc()

	// Step 4: dispatch.
	reply, image, local := s.resolve(ctx, sess, route, content)

	// Cosmetic pacing for locally resolved routes only.
	if local {
		s.pause(ctx)
	}

	// Step 5: swap the placeholder for the final reply.
	final := domain.Message{
		ID:        uuid.NewString(),
		Content:   reply,
		Sender:    domain.SenderAssistant,
		Timestamp: time.Now().UTC(),
		Image:     image,
	}
	sess.mu.Lock()
	sess.transcript = domain.ReplaceByID(sess.transcript, placeholderID, final)
	if sess.pendingPlaceholderID == placeholderID {
		sess.pendingPlaceholderID = ""
	}
	sess.mu.Unlock()

	// Step 6: fire-and-forget cue.
	s.notifier().Notify(ctx, CueReceived)

	return final, nil
}

// HandleImage records an uploaded image as a user message and answers with
// the canned acknowledgement.
func (s *ChatService) HandleImage(ctx context.Context, sessionID, imageRef string) (domain.Message, error) {
	if strings.TrimSpace(imageRef) == "" {
		return domain.Message{}, ErrEmptyPrompt
	}
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.Message{}, err
	}

	sess.mu.Lock()
	sess.transcript = domain.Append(sess.transcript, domain.Message{
		ID:        uuid.NewString(),
		Content:   "I've uploaded this image:",
		Sender:    domain.SenderUser,
		Timestamp: time.Now().UTC(),
		Image:     imageRef,
	})
	sess.mu.Unlock()

	s.notifier().Notify(ctx, CueSent)
	s.pause(ctx)

	final := domain.Message{
		ID:        uuid.NewString(),
		Content:   imageAckReply,
		Sender:    domain.SenderAssistant,
		Timestamp: time.Now().UTC(),
	}
	sess.mu.Lock()
	sess.transcript = domain.Append(sess.transcript, final)
	sess.mu.Unlock()

	s.notifier().Notify(ctx, CueReceived)
	return final, nil
}

// resolve produces the reply content for a route. local reports whether the
// route was resolved without the model gateway (and should be paced).
func (s *ChatService) resolve(ctx context.Context, sess *session, route Route, utterance string) (reply, image string, local bool) {
	switch route.Kind {
	case RoutePolicy:
		return formatPolicyReply(s.Info, route.Arg), "", true

	case RouteGreeting:
		return greetingReply, "", true

	case RouteListing:
		return formatListingReply(s.Products.GetAll(ctx)), "", true

	case RouteCategory:
		matches := s.Products.Search(ctx, route.Arg)
		if len(matches) == 0 {
			return s.freeForm(ctx, sess, utterance), "", true
		}
		return formatCategoryReply(route.Arg, matches), matches[0].Image, true

	case RouteProductQuery:
		matches := s.Products.Search(ctx, route.Arg)
		if len(matches) == 0 {
			// NoMatch converts into the free-form tier.
			return s.freeForm(ctx, sess, utterance), "", true
		}
		return formatProductReply(matches[0]), matches[0].Image, true

	default:
		reply := s.freeForm(ctx, sess, utterance)
		return reply, "", s.gatewayDisabled(sess)
	}
}

// freeForm answers through the gateway when the session is healthy,
// degrading to the local responder on any failure. The degradation is
// sticky: once modelHealthy is false the gateway is not attempted again.
func (s *ChatService) freeForm(ctx context.Context, sess *session, utterance string) string {
	sess.mu.Lock()
	healthy := sess.modelHealthy
	sess.mu.Unlock()

	if !healthy || s.Gateway == nil {
		return localRespond(utterance)
	}

	prompt := buildSystemPrompt(s.Info, s.Products.GetAll(ctx))
	reply, err := s.Gateway.Complete(ctx, prompt, utterance)
	if err != nil {
		kind := groq.KindOf(err).String()
		observability.GatewayRequests.WithLabelValues(kind).Inc()
		log.Warn().Err(err).Str("kind", kind).Msg("model gateway failed; session degraded")

		sess.mu.Lock()
		wasHealthy := sess.modelHealthy
		sess.modelHealthy = false
		sess.mu.Unlock()
		if wasHealthy {
			observability.DegradedSessions.Inc()
		}
		return localRespond(utterance)
	}
	observability.GatewayRequests.WithLabelValues("ok").Inc()
	return reply
}

// gatewayDisabled reports whether free-form turns resolve locally for this
// session (degraded or gateway-less), which means the turn should be paced.
func (s *ChatService) gatewayDisabled(sess *session) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return !sess.modelHealthy || s.Gateway == nil
}

// pause applies the cosmetic thinking delay, honoring context cancellation.
func (s *ChatService) pause(ctx context.Context) {
	d := s.ThinkingDelay
	if d == 0 {
		d = DefaultThinkingDelay
	}
	if d < 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func (s *ChatService) lookup(sessionID string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *ChatService) notifier() Notifier {
	if s.Notifier != nil {
		return s.Notifier
	}
	return NopNotifier{}
}
