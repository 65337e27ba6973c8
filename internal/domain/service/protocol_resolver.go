package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"chain-persona-engine/internal/domain/entity"
	"chain-persona-engine/internal/infrastructure/logger"
)

// oracleConfidenceThreshold is the minimum oracle confidence accepted for an
// identification; results at or below it fall back to the placeholder.
const oracleConfidenceThreshold = 60

// ProtocolResolverService maps contract addresses to protocol identities.
// Static tables are authoritative; the oracle only fills gaps and is never
// consulted for addresses the tables already cover.
type ProtocolResolverService struct {
	tables map[string]map[string]entity.ProtocolEntry
	oracle ProtocolOracle
	logger *logger.Logger
}

// NewProtocolResolverService creates a resolver over the static protocol
// tables. The oracle may be nil, in which case unknown contracts resolve
// straight to the placeholder.
func NewProtocolResolverService(oracle ProtocolOracle, log *logger.Logger) *ProtocolResolverService {
	return &ProtocolResolverService{
		tables: defaultProtocolTables(),
		oracle: oracle,
		logger: log.WithComponent("protocol-resolver"),
	}
}

// Resolve identifies a single contract on the given chain. It never fails:
// table miss plus oracle miss yields a zero-confidence placeholder entry.
func (s *ProtocolResolverService) Resolve(ctx context.Context, chain, address string, interactionCount int) entity.ProtocolMatch {
	addr := strings.ToLower(address)

	if entry, ok := s.tables[chain][addr]; ok {
		return entity.ProtocolMatch{
			Address:    addr,
			Name:       entry.Name,
			Category:   entry.Category,
			Confidence: 100,
		}
	}

	if s.oracle != nil {
		analysis, err := s.oracle.AnalyzeProtocol(ctx, addr, interactionCount)
		if err != nil {
			s.logger.Warn("protocol oracle lookup failed",
				zap.String("address", addr),
				zap.Error(err))
		} else if analysis != nil && analysis.Confidence > oracleConfidenceThreshold && analysis.Name != "" {
			return entity.ProtocolMatch{
				Address:    addr,
				Name:       analysis.Name,
				Category:   entity.ParseProtocolCategory(analysis.Category),
				Confidence: analysis.Confidence,
			}
		}
	}

	return entity.ProtocolMatch{
		Address:    addr,
		Name:       placeholderName(addr),
		Category:   entity.CategoryUnknown,
		Confidence: 0,
	}
}

// TopProtocols ranks the distinct destinations among the given contract
// interactions by interaction count (first-seen order breaks ties), resolves
// the top k, and formats each as "Name (N txns)". Deployments have no
// destination and are excluded from the ranking.
func (s *ProtocolResolverService) TopProtocols(ctx context.Context, chain string, interactions []*entity.Transaction, k int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, tx := range interactions {
		addr := strings.ToLower(tx.To)
		if addr == "" {
			continue
		}
		if _, ok := counts[addr]; !ok {
			firstSeen[addr] = i
		}
		counts[addr]++
	}

	ranked := make([]string, 0, len(counts))
	for addr := range counts {
		ranked = append(ranked, addr)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}

	top := make([]string, 0, len(ranked))
	for _, addr := range ranked {
		match := s.Resolve(ctx, chain, addr, counts[addr])
		top = append(top, fmt.Sprintf("%s (%d txns)", match.Name, counts[addr]))
	}
	return top
}

// CategoryCounts tallies interactions per protocol category using the static
// tables only. Archetype scoring must stay deterministic, so the oracle is
// deliberately not consulted here.
func (s *ProtocolResolverService) CategoryCounts(chain string, interactions []*entity.Transaction) map[entity.ProtocolCategory]int {
	counts := make(map[entity.ProtocolCategory]int)
	table := s.tables[chain]
	for _, tx := range interactions {
		if entry, ok := table[strings.ToLower(tx.To)]; ok {
			counts[entry.Category]++
		}
	}
	return counts
}

// placeholderName renders the fallback display name for an unidentified
// contract from the first 8 hex characters of its address.
func placeholderName(addr string) string {
	hex := strings.TrimPrefix(addr, "0x")
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return fmt.Sprintf("Contract 0x%s...", hex)
}
