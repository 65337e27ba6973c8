package service

import (
	"math"
	"sort"

	"chain-persona-engine/internal/domain/entity"
)

// Raw-score weights for the transaction-pattern heuristics.
const (
	traderMaxAvgGapSeconds   = secondsPerDay
	investorMinAvgGapSeconds = 30 * secondsPerDay
	investorMinAvgValue      = 1.0
)

// ERC20 symbols treated as governance positions.
var governanceTokenSymbols = map[string]struct{}{
	"COMP": {},
	"UNI":  {},
	"AAVE": {},
	"MKR":  {},
}

// ScoreTransactionPatterns adds cadence and value-size signals to the raw
// scores. A sub-day average gap between transactions marks a trader; a
// month-plus gap combined with >1 native unit average value marks a
// long-term investor. Needs at least two transactions to form a gap.
func ScoreTransactionPatterns(scores entity.ArchetypeScores, txs []*entity.Transaction) {
	if len(txs) < 2 {
		return
	}

	timestamps := make([]int64, len(txs))
	for i, tx := range txs {
		timestamps[i] = tx.Timestamp
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	var gapSum int64
	for i := 1; i < len(timestamps); i++ {
		gapSum += timestamps[i] - timestamps[i-1]
	}
	avgGap := float64(gapSum) / float64(len(timestamps)-1)

	if avgGap < traderMaxAvgGapSeconds {
		scores[entity.ArchetypeTrader] += 30
	}
	if avgGap > investorMinAvgGapSeconds && averageNativeValue(txs) > investorMinAvgValue {
		scores[entity.ArchetypeLongTermInvestor] += 30
	}
}

// ScoreTokenHoldings adds portfolio signals: a meaningful NFT collection,
// broad ERC20 exposure, and governance token positions.
func ScoreTokenHoldings(scores entity.ArchetypeScores, holdings *entity.TokenHoldings) {
	if holdings == nil {
		return
	}

	if n := len(holdings.ERC721); n > 5 {
		scores[entity.ArchetypeNFTCollector] += 20 + math.Min(30, float64(n))
	}
	if len(holdings.ERC20) > 5 {
		scores[entity.ArchetypeDeFiPowerUser] += 15
	}
	for _, token := range holdings.ERC20 {
		if _, ok := governanceTokenSymbols[token.Symbol]; ok {
			scores[entity.ArchetypeGovernance] += 15
		}
	}
}

// ScoreContractInteractions adds capped per-category interaction signals and
// the contract-deployment signal. An empty interaction set contributes
// nothing.
func ScoreContractInteractions(scores entity.ArchetypeScores, categoryCounts map[entity.ProtocolCategory]int, deployments int) {
	if n := categoryCounts[entity.CategoryDeFi]; n > 0 {
		scores[entity.ArchetypeDeFiPowerUser] += math.Min(40, float64(n)*2)
	}
	if n := categoryCounts[entity.CategoryNFT]; n > 0 {
		scores[entity.ArchetypeNFTCollector] += math.Min(40, float64(n)*2)
	}
	if n := categoryCounts[entity.CategoryGaming]; n > 0 {
		scores[entity.ArchetypeGaming] += math.Min(40, float64(n)*3)
	}
	if n := categoryCounts[entity.CategoryGovernance]; n > 0 {
		scores[entity.ArchetypeGovernance] += math.Min(40, float64(n)*4)
	}
	if n := categoryCounts[entity.CategoryStaking]; n > 0 {
		scores[entity.ArchetypeLongTermInvestor] += math.Min(30, float64(n)*3)
	}
	if deployments > 0 {
		scores[entity.ArchetypeDeveloper] += 40 + math.Min(40, float64(deployments)*10)
	}
}

// NormalizeArchetypes converts raw scores into a percentage distribution
// summing to 100.00 with two-decimal rounding. A zero-signal wallet gets the
// fixed default distribution instead of a division by zero.
func NormalizeArchetypes(raw entity.ArchetypeScores) entity.ArchetypeScores {
	var total float64
	for _, v := range raw {
		total += v
	}
	if total == 0 {
		return defaultDistribution()
	}

	out := entity.NewArchetypeScores()
	for _, a := range entity.AllArchetypes() {
		out[a] = round2(raw[a] / total * 100)
	}
	return out
}

// defaultDistribution is the documented zero-signal fallback. It sums to
// exactly 100.00.
func defaultDistribution() entity.ArchetypeScores {
	return entity.ArchetypeScores{
		entity.ArchetypeDeFiPowerUser:    35.50,
		entity.ArchetypeTrader:           28.75,
		entity.ArchetypeLongTermInvestor: 18.25,
		entity.ArchetypeNFTCollector:     12.00,
		entity.ArchetypeGovernance:       3.50,
		entity.ArchetypeDeveloper:        1.50,
		entity.ArchetypeGaming:           0.50,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
