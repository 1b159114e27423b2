package advisor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JackSaady/photo-pricing-compass/internal/model"

	json "github.com/goccy/go-json"
)

func fakeGeminiServer(t *testing.T, text string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing api key header")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		})
	}))
}

func testPrompt() NegotiationPrompt {
	return NegotiationPrompt{
		Currency:     "$",
		TargetHourly: 219.96,
		ClientBudget: 1200,
		Scenario: model.ScenarioData{
			Title: "Acme Headshots",
			Type:  model.ScenarioTeam,
			Tiers: [3]model.QuoteTier{{Price: 1595}, {Price: 1993}, {Price: 2552}},
		},
	}
}

func TestNilClientFallsBack(t *testing.T) {
	var c *Client
	if got := c.NegotiationAdvice(context.Background(), testPrompt()); got != MsgNoKeyAdvice {
		t.Errorf("nil client advice = %q, want %q", got, MsgNoKeyAdvice)
	}
	if got := c.CorporateStrategy(context.Background(), CorporatePrompt{}); got != MsgNoKeyStrategy {
		t.Errorf("nil client strategy = %q, want %q", got, MsgNoKeyStrategy)
	}
}

func TestNewClientEmptyKey(t *testing.T) {
	if NewClient("", "gemini-2.5-flash") != nil {
		t.Error("empty key should yield nil client")
	}
	if NewClient("   ", "gemini-2.5-flash") != nil {
		t.Error("blank key should yield nil client")
	}
}

func TestNegotiationAdvice(t *testing.T) {
	srv := fakeGeminiServer(t, "- Trim retouching to 5 images", http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	got := c.NegotiationAdvice(context.Background(), testPrompt())
	if got != "- Trim retouching to 5 images" {
		t.Errorf("advice = %q", got)
	}
}

func TestAdviceServerError(t *testing.T) {
	srv := fakeGeminiServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	if got := c.NegotiationAdvice(context.Background(), testPrompt()); got != MsgAdviceError {
		t.Errorf("advice on 500 = %q, want %q", got, MsgAdviceError)
	}
	if got := c.CorporateStrategy(context.Background(), CorporatePrompt{Headcount: 50}); got != MsgStrategyError {
		t.Errorf("strategy on 500 = %q, want %q", got, MsgStrategyError)
	}
}

func TestEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	if got := c.NegotiationAdvice(context.Background(), testPrompt()); got != MsgNoAdvice {
		t.Errorf("advice = %q, want %q", got, MsgNoAdvice)
	}
	if got := c.CorporateStrategy(context.Background(), CorporatePrompt{}); got != MsgNoStrategy {
		t.Errorf("strategy = %q, want %q", got, MsgNoStrategy)
	}
}

func TestPromptInterpolation(t *testing.T) {
	text := testPrompt().Render()
	for _, want := range []string{"$219.96", "Acme Headshots", "Team/Group Headshots", "$1595", "$1993", "$2552", "$1200"} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	corp := CorporatePrompt{Headcount: 80, Days: 1.5, HoursPerDay: 6}.Render()
	for _, want := range []string{"80 people", "Days allocated: 1.5", "hours/day: 6"} {
		if !strings.Contains(corp, want) {
			t.Errorf("corporate prompt missing %q", want)
		}
	}
}
