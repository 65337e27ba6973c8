package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chain-persona-engine/internal/domain/entity"
	domainservice "chain-persona-engine/internal/domain/service"
	"chain-persona-engine/internal/infrastructure/config"
	"chain-persona-engine/internal/infrastructure/logger"
)

// PersonaApplicationService runs the full persona pipeline for one chain:
// fetch, normalize, score, resolve protocols, assemble, enrich. It holds no
// per-wallet state; every request is computed from scratch.
type PersonaApplicationService struct {
	source       domainservice.ChainDataSource
	normalizer   *domainservice.TransactionNormalizer
	resolver     *domainservice.ProtocolResolverService
	insights     domainservice.InsightOracle
	topProtocols int
	txLimit      int
	logger       *logger.Logger
	now          func() time.Time
}

// NewPersonaApplicationService creates the persona pipeline for the chain
// served by source. The insight oracle may be nil; personas are then built
// without the narrative layer.
func NewPersonaApplicationService(
	source domainservice.ChainDataSource,
	normalizer *domainservice.TransactionNormalizer,
	resolver *domainservice.ProtocolResolverService,
	insights domainservice.InsightOracle,
	cfg *config.Config,
	log *logger.Logger,
) domainservice.PersonaService {
	return &PersonaApplicationService{
		source:       source,
		normalizer:   normalizer,
		resolver:     resolver,
		insights:     insights,
		topProtocols: cfg.Persona.TopProtocols,
		txLimit:      cfg.Explorer.TxLimit,
		logger:       log.WithComponent("persona-" + source.ChainType()),
		now:          time.Now,
	}
}

// GeneratePersona derives the persona for one wallet address. The only error
// path is address validation; upstream outages degrade to personas computed
// from empty data.
func (s *PersonaApplicationService) GeneratePersona(ctx context.Context, address string) (*entity.WalletPersona, error) {
	if !domainservice.IsValidWalletAddress(address) {
		return nil, fmt.Errorf("invalid wallet address: %s", address)
	}

	var (
		txs          []*entity.Transaction
		interactions []*entity.Transaction
		holdings     *entity.TokenHoldings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if txs, err = s.source.GetWalletTransactions(gctx, address, s.txLimit); err != nil {
			s.logger.Warn("transaction fetch degraded", zap.Error(err))
			txs = []*entity.Transaction{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if interactions, err = s.source.GetContractInteractions(gctx, address, s.txLimit); err != nil {
			s.logger.Warn("interaction fetch degraded", zap.Error(err))
			interactions = []*entity.Transaction{}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if holdings, err = s.source.GetTokenBalances(gctx, address); err != nil {
			s.logger.Warn("token balance fetch degraded", zap.Error(err))
			holdings = nil
		}
		return nil
	})
	_ = g.Wait()

	txs = s.normalizer.Merge(txs)
	chain := s.source.ChainType()

	raw := entity.NewArchetypeScores()
	domainservice.ScoreTransactionPatterns(raw, txs)
	domainservice.ScoreTokenHoldings(raw, holdings)

	deployments := 0
	for _, tx := range interactions {
		if tx.IsDeployment() {
			deployments++
		}
	}
	domainservice.ScoreContractInteractions(raw, s.resolver.CategoryCounts(chain, interactions), deployments)

	security := domainservice.CalculateSecurityScore(txs, interactions)
	persona := &entity.WalletPersona{
		Address:          address,
		Chain:            chain,
		Archetypes:       domainservice.NormalizeArchetypes(raw),
		SecurityScore:    security,
		RiskScore:        domainservice.DeriveRiskScore(security),
		ActivityLevel:    domainservice.CalculateActivityLevel(txs, s.now()),
		TransactionCount: len(txs),
		TopProtocols:     s.resolver.TopProtocols(ctx, chain, interactions, s.topProtocols),
	}
	persona.BehavioralTraits = domainservice.DeriveBehavioralTraits(persona.SecurityScore, persona.ActivityLevel, txs, interactions)
	persona.RecommendedDapps = domainservice.RecommendDapps(persona.Archetypes.Dominant(), persona.SecurityScore)

	if s.insights != nil {
		summary := summarize(persona, holdings)
		insights, err := s.insights.GenerateWalletInsights(ctx, summary)
		if err != nil {
			s.logger.Warn("insight generation degraded", zap.Error(err))
			insights = entity.DefaultWalletInsights()
		}
		persona.Insights = insights
	}

	s.logger.Info("persona generated",
		zap.String("address", address),
		zap.Int("transactions", persona.TransactionCount),
		zap.Int("activity", persona.ActivityLevel),
		zap.Int("security", persona.SecurityScore))
	return persona, nil
}

// Chat answers one follow-up question about a wallet. The caller carries the
// remaining quota; once it reaches zero the oracle is not consulted.
func (s *PersonaApplicationService) Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error) {
	if req.Question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if req.RemainingQuota <= 0 {
		return entity.QuotaExhaustedChatResponse(), nil
	}
	if s.insights == nil {
		return entity.DefaultChatResponse(), nil
	}

	resp, err := s.insights.Chat(ctx, req.Question, req.Summary, req.History)
	if err != nil {
		s.logger.Warn("chat degraded", zap.Error(err))
		return entity.DefaultChatResponse(), nil
	}
	return resp, nil
}

func summarize(p *entity.WalletPersona, holdings *entity.TokenHoldings) *entity.WalletSummary {
	summary := &entity.WalletSummary{
		Address:          p.Address,
		Chain:            p.Chain,
		TransactionCount: p.TransactionCount,
		ActivityLevel:    p.ActivityLevel,
		SecurityScore:    p.SecurityScore,
		TopProtocols:     p.TopProtocols,
		BehavioralTraits: p.BehavioralTraits,
	}
	if holdings != nil {
		summary.TokenCount = len(holdings.ERC20)
		summary.NFTCount = len(holdings.ERC721)
	}
	return summary
}
