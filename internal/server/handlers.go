package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"chain-persona-engine/internal/domain/entity"
	"chain-persona-engine/internal/domain/service"
	"chain-persona-engine/internal/infrastructure/logger"
)

// Handlers holds the API endpoints. One persona engine per supported chain;
// the analysis oracle is optional and gates the /api/analysis endpoint.
type Handlers struct {
	engines      map[string]service.PersonaService
	analysis     service.AnalysisOracle
	defaultQuota int
	aiEnabled    bool
	logger       *logger.Logger
}

// NewHandlers creates the handler set. analysis may be nil.
func NewHandlers(engines map[string]service.PersonaService, analysis service.AnalysisOracle, defaultQuota int, aiEnabled bool, log *logger.Logger) *Handlers {
	return &Handlers{
		engines:      engines,
		analysis:     analysis,
		defaultQuota: defaultQuota,
		aiEnabled:    aiEnabled,
		logger:       log.WithComponent("handlers"),
	}
}

// Health reports service status and the feature map.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"chains": h.supportedChains(),
		"features": map[string]bool{
			"aiInsights":       h.aiEnabled,
			"chat":             h.aiEnabled,
			"detailedAnalysis": h.analysis != nil,
		},
	})
}

// Persona handles GET /api/persona/{chain}/{address}.
func (h *Handlers) Persona(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	engine, address, ok := h.resolveTarget(w, r, "/api/persona/")
	if !ok {
		return
	}

	persona, err := engine.GeneratePersona(r.Context(), address)
	if err != nil {
		h.logger.Error("persona generation failed", zap.String("address", address), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "persona generation failed")
		return
	}
	respondJSON(w, http.StatusOK, persona)
}

type chatPayload struct {
	Question       string                `json:"question"`
	History        []string              `json:"history"`
	WalletData     *entity.WalletSummary `json:"walletData"`
	RemainingQuota *int                  `json:"remainingQuota"`
}

// Chat handles POST /api/chat/{chain}/{address}.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	engine, address, ok := h.resolveTarget(w, r, "/api/chat/")
	if !ok {
		return
	}

	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	quota := h.defaultQuota
	if payload.RemainingQuota != nil {
		quota = *payload.RemainingQuota
	}
	if payload.WalletData == nil {
		payload.WalletData = &entity.WalletSummary{Address: address}
	}

	resp, err := engine.Chat(r.Context(), &entity.ChatRequest{
		Question:       payload.Question,
		History:        payload.History,
		Summary:        payload.WalletData,
		RemainingQuota: quota,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"response":       resp,
		"remainingQuota": maxInt(0, quota-1),
	})
}

type analysisPayload struct {
	WalletData *entity.WalletSummary `json:"walletData"`
}

// Analysis handles POST /api/analysis/{chain}/{address}. Available only when
// a secondary oracle key is configured.
func (h *Handlers) Analysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.analysis == nil {
		writeError(w, http.StatusBadRequest, "detailed analysis is not available")
		return
	}

	_, address, ok := h.resolveTarget(w, r, "/api/analysis/")
	if !ok {
		return
	}

	var payload analysisPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.WalletData == nil {
		payload.WalletData = &entity.WalletSummary{Address: address}
	}

	report, err := h.analysis.DetailedAnalysis(r.Context(), payload.WalletData)
	if err != nil {
		h.logger.Warn("detailed analysis degraded", zap.Error(err))
		report = entity.DefaultDetailedAnalysis()
	}
	respondJSON(w, http.StatusOK, report)
}

// resolveTarget parses "{prefix}{chain}/{address}", validates both parts, and
// returns the chain's engine. Writes the error response itself on failure.
func (h *Handlers) resolveTarget(w http.ResponseWriter, r *http.Request, prefix string) (service.PersonaService, string, bool) {
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 {
		writeError(w, http.StatusBadRequest, "expected path "+prefix+"{chain}/{address}")
		return nil, "", false
	}
	chain, address := parts[0], parts[1]

	engine, ok := h.engines[chain]
	if !ok {
		writeError(w, http.StatusBadRequest,
			"unsupported chain: "+chain+" (supported: "+strings.Join(h.supportedChains(), ", ")+")")
		return nil, "", false
	}
	if !service.IsValidWalletAddress(address) {
		writeError(w, http.StatusBadRequest, "invalid wallet address")
		return nil, "", false
	}
	return engine, address, true
}

func (h *Handlers) supportedChains() []string {
	chains := make([]string, 0, len(h.engines))
	for chain := range h.engines {
		chains = append(chains, chain)
	}
	sort.Strings(chains)
	return chains
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
