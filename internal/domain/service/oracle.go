package service

import (
	"context"

	"chain-persona-engine/internal/domain/entity"
)

// ProtocolOracle identifies contracts the static protocol tables do not
// cover. Results below the resolver's confidence threshold are discarded by
// the caller.
type ProtocolOracle interface {
	AnalyzeProtocol(ctx context.Context, address string, interactionCount int) (*entity.ProtocolAnalysis, error)
}

// InsightOracle produces the narrative layer of a persona. All methods are
// best effort; callers substitute the documented defaults on error.
type InsightOracle interface {
	GenerateWalletInsights(ctx context.Context, summary *entity.WalletSummary) (*entity.WalletInsights, error)
	Chat(ctx context.Context, question string, summary *entity.WalletSummary, history []string) (*entity.ChatResponse, error)
}

// AnalysisOracle produces the optional deep-dive report. It is wired only
// when a secondary API key is configured.
type AnalysisOracle interface {
	DetailedAnalysis(ctx context.Context, summary *entity.WalletSummary) (*entity.DetailedAnalysis, error)
}
