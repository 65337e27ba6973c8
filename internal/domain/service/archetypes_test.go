package service

import (
	"math"
	"testing"

	"chain-persona-engine/internal/domain/entity"
)

func distributionSum(scores entity.ArchetypeScores) float64 {
	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum
}

func TestNormalizeArchetypesSumsToHundred(t *testing.T) {
	raw := entity.NewArchetypeScores()
	raw[entity.ArchetypeTrader] = 30
	raw[entity.ArchetypeDeFiPowerUser] = 40
	raw[entity.ArchetypeNFTCollector] = 7

	normalized := NormalizeArchetypes(raw)
	if sum := distributionSum(normalized); math.Abs(sum-100) > 0.01 {
		t.Errorf("distribution sums to %.4f, want 100.00 within 0.01", sum)
	}
	for a, v := range normalized {
		if v < 0 || v > 100 {
			t.Errorf("%s: %.2f out of [0,100]", a, v)
		}
	}
}

func TestNormalizeArchetypesZeroSignalFallback(t *testing.T) {
	normalized := NormalizeArchetypes(entity.NewArchetypeScores())

	want := map[entity.Archetype]float64{
		entity.ArchetypeDeFiPowerUser:    35.50,
		entity.ArchetypeTrader:           28.75,
		entity.ArchetypeLongTermInvestor: 18.25,
		entity.ArchetypeNFTCollector:     12.00,
		entity.ArchetypeGovernance:       3.50,
		entity.ArchetypeDeveloper:        1.50,
		entity.ArchetypeGaming:           0.50,
	}
	for a, w := range want {
		if normalized[a] != w {
			t.Errorf("%s: got %.2f, want %.2f", a, normalized[a], w)
		}
	}
	if sum := distributionSum(normalized); sum != 100.00 {
		t.Errorf("fallback distribution sums to %.2f", sum)
	}
}

func TestScoreTransactionPatternsTraderCadence(t *testing.T) {
	// 50 transactions an hour apart: average gap well under a day.
	txs := make([]*entity.Transaction, 50)
	for i := range txs {
		txs[i] = &entity.Transaction{Hash: string(rune('a' + i)), Timestamp: int64(i) * 3600, Value: "0"}
	}

	scores := entity.NewArchetypeScores()
	ScoreTransactionPatterns(scores, txs)
	if scores[entity.ArchetypeTrader] != 30 {
		t.Errorf("expected trader weight 30, got %.1f", scores[entity.ArchetypeTrader])
	}
	if scores[entity.ArchetypeLongTermInvestor] != 0 {
		t.Errorf("long-term investor should not score on rapid cadence")
	}
}

func TestScoreTransactionPatternsLongTermInvestor(t *testing.T) {
	// Two transactions 60 days apart moving 2 native units each.
	txs := []*entity.Transaction{
		{Hash: "0x1", Timestamp: 0, Value: "2000000000000000000"},
		{Hash: "0x2", Timestamp: 60 * secondsPerDay, Value: "2000000000000000000"},
	}

	scores := entity.NewArchetypeScores()
	ScoreTransactionPatterns(scores, txs)
	if scores[entity.ArchetypeLongTermInvestor] != 30 {
		t.Errorf("expected investor weight 30, got %.1f", scores[entity.ArchetypeLongTermInvestor])
	}
}

func TestScoreTransactionPatternsNeedsTwoTransactions(t *testing.T) {
	scores := entity.NewArchetypeScores()
	ScoreTransactionPatterns(scores, []*entity.Transaction{{Hash: "0x1", Timestamp: 100, Value: "0"}})
	if distributionSum(scores) != 0 {
		t.Error("single transaction should not produce cadence signals")
	}
}

func TestScoreTokenHoldings(t *testing.T) {
	holdings := &entity.TokenHoldings{
		ERC20: []entity.TokenHolding{
			{Symbol: "UNI"}, {Symbol: "AAVE"}, {Symbol: "USDC"},
			{Symbol: "DAI"}, {Symbol: "WETH"}, {Symbol: "LINK"},
		},
		ERC721: make([]entity.NFTHolding, 12),
	}

	scores := entity.NewArchetypeScores()
	ScoreTokenHoldings(scores, holdings)

	if got := scores[entity.ArchetypeNFTCollector]; got != 32 { // 20 + min(30, 12)
		t.Errorf("nft collector: got %.1f, want 32", got)
	}
	if got := scores[entity.ArchetypeDeFiPowerUser]; got != 15 {
		t.Errorf("defi power user: got %.1f, want 15", got)
	}
	if got := scores[entity.ArchetypeGovernance]; got != 30 { // UNI + AAVE
		t.Errorf("governance: got %.1f, want 30", got)
	}
}

func TestScoreTokenHoldingsNilSafe(t *testing.T) {
	scores := entity.NewArchetypeScores()
	ScoreTokenHoldings(scores, nil)
	if distributionSum(scores) != 0 {
		t.Error("nil holdings should contribute nothing")
	}
}

func TestScoreContractInteractionsCategoryCaps(t *testing.T) {
	scores := entity.NewArchetypeScores()
	ScoreContractInteractions(scores, map[entity.ProtocolCategory]int{
		entity.CategoryDeFi:       50, // capped at 40
		entity.CategoryGaming:     5,  // 15
		entity.CategoryGovernance: 20, // capped at 40
		entity.CategoryStaking:    4,  // 12 to long-term investor
	}, 0)

	if scores[entity.ArchetypeDeFiPowerUser] != 40 {
		t.Errorf("defi: got %.1f, want 40", scores[entity.ArchetypeDeFiPowerUser])
	}
	if scores[entity.ArchetypeGaming] != 15 {
		t.Errorf("gaming: got %.1f, want 15", scores[entity.ArchetypeGaming])
	}
	if scores[entity.ArchetypeGovernance] != 40 {
		t.Errorf("governance: got %.1f, want 40", scores[entity.ArchetypeGovernance])
	}
	if scores[entity.ArchetypeLongTermInvestor] != 12 {
		t.Errorf("staking→investor: got %.1f, want 12", scores[entity.ArchetypeLongTermInvestor])
	}
}

func TestScoreContractInteractionsDeployments(t *testing.T) {
	scores := entity.NewArchetypeScores()
	ScoreContractInteractions(scores, nil, 1)
	if got := scores[entity.ArchetypeDeveloper]; got != 50 { // 40 + min(40, 10)
		t.Errorf("developer: got %.1f, want 50", got)
	}

	scores = entity.NewArchetypeScores()
	ScoreContractInteractions(scores, nil, 10)
	if got := scores[entity.ArchetypeDeveloper]; got != 80 { // 40 + cap 40
		t.Errorf("developer capped: got %.1f, want 80", got)
	}
}

func TestScoreContractInteractionsEmptySetContributesNothing(t *testing.T) {
	scores := entity.NewArchetypeScores()
	ScoreContractInteractions(scores, map[entity.ProtocolCategory]int{}, 0)
	if distributionSum(scores) != 0 {
		t.Error("empty interaction set must not add synthetic bonuses")
	}
}
