package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/aliconnects/go-shop-assistant/internal/catalog"
	"github.com/aliconnects/go-shop-assistant/internal/domain"
)

// fakeGateway is a programmable Completer.
type fakeGateway struct {
	reply string
	err   error
	calls int
}

func (f *fakeGateway) Complete(context.Context, string, string) (string, error) {
	f.calls++
	return f.reply, f.err
}

// recordingNotifier captures emitted cues.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(_ context.Context, event string) {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
}

// newTestChat builds an orchestrator over a failing catalog (static fallback
// data), the default store info, and the given gateway. The thinking delay is
// disabled so tests run instantly.
func newTestChat(gw Completer) (*ChatService, *fakeCatalog) {
	fc := &fakeCatalog{
		productsErr:   errors.New("catalog down"),
		featuredErr:   errors.New("catalog down"),
		categoriesErr: errors.New("catalog down"),
	}
	info := catalog.DefaultStoreInfo()
	svc := NewChatService(NewProductService(fc), NewClassifier(info), gw, info)
	svc.ThinkingDelay = -1
	return svc, fc
}

func TestCreateSession_SeedsWelcome(t *testing.T) {
	svc, _ := newTestChat(nil)

	id, transcript := svc.CreateSession(context.Background())
	if id == "" {
		t.Fatalf("empty session id")
	}
	if len(transcript) != 2 {
		t.Fatalf("seed transcript len = %d; want 2", len(transcript))
	}
	for _, m := range transcript {
		if m.Sender != domain.SenderAssistant {
			t.Fatalf("seed message from %q; want assistant", m.Sender)
		}
	}
	if !strings.Contains(transcript[0].Content, "Welcome") {
		t.Fatalf("first welcome message = %q", transcript[0].Content)
	}
}

func TestHandleTurn_UnknownSession(t *testing.T) {
	svc, _ := newTestChat(nil)

	_, err := svc.HandleTurn(context.Background(), "nope", "hello")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v; want ErrSessionNotFound", err)
	}
}

func TestHandleTurn_ValidatesInput(t *testing.T) {
	svc, _ := newTestChat(nil)
	id, _ := svc.CreateSession(context.Background())

	if _, err := svc.HandleTurn(context.Background(), id, "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("blank: err = %v; want ErrEmptyPrompt", err)
	}

	svc.MaxPromptRunes = 5
	if _, err := svc.HandleTurn(context.Background(), id, "this is too long"); !errors.Is(err, ErrTooLong) {
		t.Fatalf("oversized: err = %v; want ErrTooLong", err)
	}
}

func TestHandleTurn_ReturnPolicyVerbatim(t *testing.T) {
	gw := &fakeGateway{}
	svc, fc := newTestChat(gw)
	id, _ := svc.CreateSession(context.Background())

	final, err := svc.HandleTurn(context.Background(), id, "What is your return policy?")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	want := catalog.DefaultStoreInfo().Returns
	if final.Content != want {
		t.Fatalf("reply = %q; want the verbatim returns policy", final.Content)
	}
	// Policy answers never touch the catalog or the gateway.
	if fc.productCalls != 0 {
		t.Fatalf("catalog fetched %d times; want 0", fc.productCalls)
	}
	if gw.calls != 0 {
		t.Fatalf("gateway called %d times; want 0", gw.calls)
	}
}

func TestHandleTurn_CategorySearchIncludesPrice(t *testing.T) {
	svc, _ := newTestChat(nil)
	id, _ := svc.CreateSession(context.Background())

	// Catalog is down, so the static dataset answers: the Bluetooth speaker
	// costs $39.99 there.
	final, err := svc.HandleTurn(context.Background(), id, "show me speakers")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !strings.Contains(final.Content, "$39.99") {
		t.Fatalf("reply %q does not mention $39.99", final.Content)
	}
	if final.Image == "" {
		t.Fatalf("category reply carries no product image")
	}
}

func TestHandleTurn_ExactlyOneAssistantMessage(t *testing.T) {
	svc, _ := newTestChat(nil)
	ctx := context.Background()
	id, seed := svc.CreateSession(ctx)

	if _, err := svc.HandleTurn(ctx, id, "hello"); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	transcript, err := svc.Transcript(id)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if want := len(seed) + 2; len(transcript) != want {
		t.Fatalf("transcript len = %d; want %d (one user + one assistant)", len(transcript), want)
	}
	for _, m := range transcript {
		if m.IsPlaceholder() {
			t.Fatalf("placeholder survived the turn: %+v", m)
		}
	}
	last := transcript[len(transcript)-1]
	if last.Sender != domain.SenderAssistant || last.Content != greetingReply {
		t.Fatalf("last message = %+v; want the greeting reply", last)
	}
}

func TestHandleTurn_FreeFormUsesGateway(t *testing.T) {
	gw := &fakeGateway{reply: "We have great llama merch."}
	svc, _ := newTestChat(gw)
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	final, err := svc.HandleTurn(ctx, id, "tell me a joke about llamas")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if final.Content != gw.reply {
		t.Fatalf("reply = %q; want the gateway completion", final.Content)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway calls = %d; want 1", gw.calls)
	}
	if healthy, _ := svc.ModelHealthy(id); !healthy {
		t.Fatalf("session degraded after a successful completion")
	}
}

func TestHandleTurn_GatewayFailureDegradesSessionStickily(t *testing.T) {
	gw := &fakeGateway{err: errors.New("boom")}
	svc, _ := newTestChat(gw)
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	// First free-form turn: gateway fails, the local responder answers the
	// same turn and the session turns unhealthy.
	final, err := svc.HandleTurn(ctx, id, "tell me a joke about llamas")
	if err != nil {
		t.Fatalf("HandleTurn must not surface gateway failures: %v", err)
	}
	if final.Content != localDefaultReply {
		t.Fatalf("reply = %q; want the local default reply", final.Content)
	}
	if healthy, _ := svc.ModelHealthy(id); healthy {
		t.Fatalf("session still healthy after a gateway failure")
	}

	// Even with the gateway recovered, a degraded session never retries it.
	gw.err = nil
	gw.reply = "recovered"
	final, err = svc.HandleTurn(ctx, id, "so what are the best deals")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway calls = %d; want 1 (degradation is sticky)", gw.calls)
	}
	if final.Content == "recovered" {
		t.Fatalf("degraded session used the gateway reply")
	}

	// Deterministic routes keep working while degraded.
	final, err = svc.HandleTurn(ctx, id, "what is your shipping policy")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if final.Content != catalog.DefaultStoreInfo().Shipping {
		t.Fatalf("deterministic route broken while degraded: %q", final.Content)
	}
}

func TestHandleTurn_DegradationIsPerSession(t *testing.T) {
	gw := &fakeGateway{err: errors.New("boom")}
	svc, _ := newTestChat(gw)
	ctx := context.Background()

	a, _ := svc.CreateSession(ctx)
	b, _ := svc.CreateSession(ctx)

	if _, err := svc.HandleTurn(ctx, a, "tell me a joke about llamas"); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if healthy, _ := svc.ModelHealthy(a); healthy {
		t.Fatalf("session a should be degraded")
	}
	if healthy, _ := svc.ModelHealthy(b); !healthy {
		t.Fatalf("session b degraded by session a's failure")
	}
}

func TestHandleTurn_NilGatewayAnswersLocally(t *testing.T) {
	svc, _ := newTestChat(nil)
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	final, err := svc.HandleTurn(ctx, id, "what would you recommend")
	if err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}
	if !strings.Contains(final.Content, "customer favorites") {
		t.Fatalf("reply = %q; want the canned recommendation answer", final.Content)
	}
}

func TestHandleTurn_EmitsCuePair(t *testing.T) {
	n := &recordingNotifier{}
	svc, _ := newTestChat(nil)
	svc.Notifier = n
	ctx := context.Background()
	id, _ := svc.CreateSession(ctx)

	if _, err := svc.HandleTurn(ctx, id, "hello"); err != nil {
		t.Fatalf("HandleTurn: %v", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) != 2 || n.events[0] != CueSent || n.events[1] != CueReceived {
		t.Fatalf("cues = %v; want [sent received]", n.events)
	}
}

func TestHandleImage_RecordsUploadAndAcknowledges(t *testing.T) {
	svc, _ := newTestChat(nil)
	ctx := context.Background()
	id, seed := svc.CreateSession(ctx)

	final, err := svc.HandleImage(ctx, id, "data:image/png;base64,AAAA")
	if err != nil {
		t.Fatalf("HandleImage: %v", err)
	}
	if final.Content != imageAckReply {
		t.Fatalf("ack = %q; want the canned acknowledgement", final.Content)
	}

	transcript, _ := svc.Transcript(id)
	if want := len(seed) + 2; len(transcript) != want {
		t.Fatalf("transcript len = %d; want %d", len(transcript), want)
	}
	upload := transcript[len(transcript)-2]
	if upload.Sender != domain.SenderUser || upload.Image == "" {
		t.Fatalf("upload message not recorded: %+v", upload)
	}
	for _, m := range transcript {
		if m.IsPlaceholder() {
			t.Fatalf("image turn left a placeholder: %+v", m)
		}
	}
}

func TestHandleImage_RejectsEmptyReference(t *testing.T) {
	svc, _ := newTestChat(nil)
	id, _ := svc.CreateSession(context.Background())

	if _, err := svc.HandleImage(context.Background(), id, "  "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("err = %v; want ErrEmptyPrompt", err)
	}
}

func TestLocalRespond_TopicTable(t *testing.T) {
	cases := []struct {
		utterance string
		fragment  string
	}{
		{"how much do things cost", "range from"},
		{"what do you recommend", "customer favorites"},
		{"any discount codes?", "seasonal promotions"},
		{"is there a warranty", "12-month"},
		{"completely unrelated", "What would you like to know?"},
	}
	for _, tc := range cases {
		t.Run(tc.utterance, func(t *testing.T) {
			got := localRespond(tc.utterance)
			if !strings.Contains(got, tc.fragment) {
				t.Fatalf("localRespond(%q) = %q; want fragment %q", tc.utterance, got, tc.fragment)
			}
		})
	}
}
