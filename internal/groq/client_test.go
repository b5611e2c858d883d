package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Sure, here you go."}}]}`))
	}))
	defer srv.Close()

	c := NewClient("key-123", WithBaseURL(srv.URL))
	got, err := c.Complete(context.Background(), "be helpful", "what do you sell")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Sure, here you go." {
		t.Fatalf("completion = %q", got)
	}

	if gotAuth != "Bearer key-123" {
		t.Fatalf("Authorization = %q; want Bearer key-123", gotAuth)
	}
	if gotBody.Model != DefaultModel {
		t.Fatalf("model = %q; want %q", gotBody.Model, DefaultModel)
	}
	if gotBody.Temperature != defaultTemperature || gotBody.MaxTokens != defaultMaxTokens {
		t.Fatalf("sampling = %v/%d; want %v/%d",
			gotBody.Temperature, gotBody.MaxTokens, defaultTemperature, defaultMaxTokens)
	}
	if len(gotBody.Messages) != 2 ||
		gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
}

func TestComplete_TruncatesBudgets(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	longSystem := strings.Repeat("s", defaultSystemBudget+500)
	longUser := strings.Repeat("u", defaultUtteranceBudget+500)

	if _, err := c.Complete(context.Background(), longSystem, longUser); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if n := len(gotBody.Messages[0].Content); n != defaultSystemBudget {
		t.Fatalf("system length = %d; want %d", n, defaultSystemBudget)
	}
	if n := len(gotBody.Messages[1].Content); n != defaultUtteranceBudget {
		t.Fatalf("utterance length = %d; want %d", n, defaultUtteranceBudget)
	}
}

func TestComplete_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), "sys", "hi")
	if err == nil {
		t.Fatalf("expected error on 429")
	}
	if KindOf(err) != KindStatus {
		t.Fatalf("kind = %s; want status", KindOf(err))
	}
	var ge *Error
	if !errors.As(err, &ge) || ge.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status code not carried: %v", err)
	}
}

func TestComplete_PayloadError(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`},
		{"not json", `<html>oops</html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient("k", WithBaseURL(srv.URL))
			_, err := c.Complete(context.Background(), "sys", "hi")
			if err == nil {
				t.Fatalf("expected payload error")
			}
			if KindOf(err) != KindPayload {
				t.Fatalf("kind = %s; want payload", KindOf(err))
			}
		})
	}
}

func TestComplete_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient("k", WithBaseURL(srv.URL))
	_, err := c.Complete(context.Background(), "sys", "hi")
	if err == nil {
		t.Fatalf("expected network error")
	}
	if KindOf(err) != KindNetwork {
		t.Fatalf("kind = %s; want network", KindOf(err))
	}
}

func TestKindOf_UnclassifiedDefaultsToNetwork(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindNetwork {
		t.Fatalf("KindOf(plain) = %s; want network", got)
	}
}

func TestErrorKind_String(t *testing.T) {
	labels := map[ErrorKind]string{
		KindNetwork:   "network",
		KindStatus:    "status",
		KindPayload:   "payload",
		ErrorKind(42): "unknown",
	}
	for k, want := range labels {
		if got := k.String(); got != want {
			t.Fatalf("String(%d) = %q; want %q", k, got, want)
		}
	}
}
