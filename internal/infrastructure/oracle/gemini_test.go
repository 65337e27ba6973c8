package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chain-persona-engine/internal/domain/entity"
	"chain-persona-engine/internal/infrastructure/logger"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeminiClient("test-key", "gemini-pro", srv.URL, 5*time.Second, logger.NewNop())
}

func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
}

func TestAnalyzeProtocolParsesFencedJSON(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(
			"Here is my analysis:\n```json\n{\"name\": \"Mystery Swap\", \"category\": \"defi\", \"description\": \"a DEX\", \"confidence\": 85}\n```\nHope that helps!"))
	})

	analysis, err := g.AnalyzeProtocol(context.Background(), "0xdead", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Name != "Mystery Swap" || analysis.Confidence != 85 {
		t.Errorf("unexpected analysis: %+v", analysis)
	}
}

func TestGenerateWalletInsightsParsesBareJSON(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(
			`{"tradingStyle": "Momentum scalper", "riskTolerance": "Risk-seeking", "defiSophistication": "Advanced", "behavioralTraits": ["fast"], "recommendations": ["slow down"], "securityAssessment": "fine", "marketContext": "bullish"}`))
	})

	insights, err := g.GenerateWalletInsights(context.Background(), &entity.WalletSummary{Address: "0x1", Chain: "ethereum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insights.TradingStyle != "Momentum scalper" || len(insights.Recommendations) != 1 {
		t.Errorf("unexpected insights: %+v", insights)
	}
}

func TestChatSurfacesAPIError(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "quota exceeded"},
		})
	})

	if _, err := g.Chat(context.Background(), "hi", &entity.WalletSummary{}, nil); err == nil {
		t.Fatal("expected error on API failure")
	}
}

func TestGenerateErrorsOnEmptyCandidates(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	if _, err := g.AnalyzeProtocol(context.Background(), "0xdead", 1); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestAnalyzeProtocolErrorsOnProse(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse("I am not sure what this contract is."))
	})

	if _, err := g.AnalyzeProtocol(context.Background(), "0xdead", 1); err == nil {
		t.Fatal("expected parse error for non-JSON response")
	}
}

func TestDetailedAnalysisParsesReport(t *testing.T) {
	report := entity.DefaultDetailedAnalysis()
	raw, _ := json.Marshal(report)
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(string(raw)))
	})

	got, err := g.DetailedAnalysis(context.Background(), &entity.WalletSummary{Address: "0x1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RiskAssessment.Score != report.RiskAssessment.Score {
		t.Errorf("report not parsed: %+v", got.RiskAssessment)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prefix {\"a\": {\"b\": 2}} suffix", `{"a": {"b": 2}}`},
	}
	for _, c := range cases {
		if got := string(extractJSON(c.in)); got != c.want {
			t.Errorf("extractJSON(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
