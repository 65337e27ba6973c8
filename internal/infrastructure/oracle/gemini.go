package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"chain-persona-engine/internal/domain/entity"
	"chain-persona-engine/internal/infrastructure/logger"
)

// GeminiClient talks to the Generative Language REST API. It backs all three
// oracle roles (protocol identification, wallet insights, chat); a second
// instance with its own key and model serves the detailed-analysis endpoint.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewGeminiClient creates a Gemini client. Callers are expected to skip
// construction entirely when no API key is configured.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration, log *logger.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.WithComponent("gemini"),
	}
}

// AnalyzeProtocol asks the model to identify an unknown contract. The
// resolver discards low-confidence answers, so this only needs to surface
// the model's opinion or an error.
func (g *GeminiClient) AnalyzeProtocol(ctx context.Context, address string, interactionCount int) (*entity.ProtocolAnalysis, error) {
	prompt := fmt.Sprintf(`You are a blockchain protocol expert. Analyze this smart contract:

Contract Address: %s
Observed Interactions: %d

Identify the most likely protocol name, categorize it
(defi|nft|gaming|staking|bridge|governance|exchange|lending), describe its
function briefly, and rate your confidence 0-100. Exact matches with known
protocol addresses warrant 95+, pattern matches 60-85, guesses 20-40.

Respond in valid JSON format:
{"name": "Protocol Name", "category": "defi", "description": "Brief functional description", "confidence": 85}`,
		address, interactionCount)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis entity.ProtocolAnalysis
	if err := json.Unmarshal(extractJSON(text), &analysis); err != nil {
		return nil, fmt.Errorf("parse protocol analysis: %w", err)
	}
	return &analysis, nil
}

// GenerateWalletInsights asks the model for the narrative persona layer.
func (g *GeminiClient) GenerateWalletInsights(ctx context.Context, summary *entity.WalletSummary) (*entity.WalletInsights, error) {
	prompt := fmt.Sprintf(`You are a DeFi expert analyzing wallet behavior. Analyze this wallet comprehensively:

Wallet Address: %s
Chain: %s
Transaction Count: %d
Activity Level: %d%%
Security Score: %d%%
Top Protocols: %s
Token Holdings: %d tokens
NFT Holdings: %d NFTs

Provide a personality analysis covering trading style, risk tolerance, DeFi
sophistication, 3-5 behavioral traits, 5 actionable recommendations, a
security assessment, and market context.

Respond in valid JSON format:
{"tradingStyle": "...", "riskTolerance": "...", "defiSophistication": "...", "behavioralTraits": ["..."], "recommendations": ["..."], "securityAssessment": "...", "marketContext": "..."}`,
		summary.Address, summary.Chain, summary.TransactionCount,
		summary.ActivityLevel, summary.SecurityScore,
		strings.Join(summary.TopProtocols, ", "),
		summary.TokenCount, summary.NFTCount)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var insights entity.WalletInsights
	if err := json.Unmarshal(extractJSON(text), &insights); err != nil {
		return nil, fmt.Errorf("parse wallet insights: %w", err)
	}
	return &insights, nil
}

// Chat answers one wallet question with the summary and prior exchanges as
// context.
func (g *GeminiClient) Chat(ctx context.Context, question string, summary *entity.WalletSummary, history []string) (*entity.ChatResponse, error) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("encode wallet summary: %w", err)
	}

	prompt := fmt.Sprintf(`You are an AI assistant specializing in blockchain and DeFi analysis. The user is asking about their wallet:

Wallet Data: %s
Conversation History: %s

User Question: "%s"

Answer directly, add 2-3 follow-up suggestions, and optional action items.
Be conversational, educational, and specific to their wallet data.

Respond in valid JSON format:
{"response": "...", "suggestions": ["..."], "actionItems": ["..."]}`,
		summaryJSON, strings.Join(history, "\n"), question)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var chat entity.ChatResponse
	if err := json.Unmarshal(extractJSON(text), &chat); err != nil {
		return nil, fmt.Errorf("parse chat response: %w", err)
	}
	return &chat, nil
}

// DetailedAnalysis asks the model for the five-section deep-dive report.
func (g *GeminiClient) DetailedAnalysis(ctx context.Context, summary *entity.WalletSummary) (*entity.DetailedAnalysis, error) {
	prompt := fmt.Sprintf(`Perform a comprehensive Web3 wallet analysis for advanced insights:

WALLET DATA:
- Address: %s
- Chain: %s
- Activity Level: %d%%
- Security Score: %d%%
- Transaction Count: %d
- Token Count: %d
- NFT Count: %d
- Top Protocols: %s
- Behavioral Traits: %s

Cover 5 areas: risk assessment (profile, factors, 0-100 score), trading
patterns (style, frequency, preferences), protocol expertise (level,
specializations, recommendations), security analysis (strengths,
vulnerabilities, recommendations), portfolio insights (diversification,
allocation, suggestions).

Return comprehensive JSON:
{"riskAssessment": {"overall": "...", "factors": ["..."], "score": 75}, "tradingPatterns": {"style": "...", "frequency": "...", "preferences": ["..."]}, "protocolExpertise": {"level": "...", "specializations": ["..."], "recommendations": ["..."]}, "securityAnalysis": {"strengths": ["..."], "vulnerabilities": ["..."], "recommendations": ["..."]}, "portfolioInsights": {"diversification": "...", "allocation": "...", "suggestions": ["..."]}}`,
		summary.Address, summary.Chain, summary.ActivityLevel,
		summary.SecurityScore, summary.TransactionCount,
		summary.TokenCount, summary.NFTCount,
		strings.Join(summary.TopProtocols, ", "),
		strings.Join(summary.BehavioralTraits, ", "))

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis entity.DetailedAnalysis
	if err := json.Unmarshal(extractJSON(text), &analysis); err != nil {
		return nil, fmt.Errorf("parse detailed analysis: %w", err)
	}
	return &analysis, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// generate runs one prompt through the generateContent endpoint and returns
// the first candidate's text.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", fmt.Errorf("gemini error: %s", decoded.Error.Message)
		}
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	g.logger.Debug("gemini response received",
		zap.Int("prompt_len", len(prompt)),
		zap.Int("response_len", len(decoded.Candidates[0].Content.Parts[0].Text)))
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSON pulls the JSON object out of a model response that may wrap it
// in markdown fences or prose. Falls back to the outermost brace window.
func extractJSON(s string) []byte {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return []byte(s[start : end+1])
	}
	return []byte(s)
}
