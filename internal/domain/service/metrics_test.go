package service

import (
	"testing"
	"time"

	"chain-persona-engine/internal/domain/entity"
)

var testNow = time.Unix(1_700_000_000, 0)

func txAt(hash string, secondsAgo int64) *entity.Transaction {
	return &entity.Transaction{Hash: hash, To: "0x" + hash, Timestamp: testNow.Unix() - secondsAgo}
}

func TestActivityLevelEmptyHistory(t *testing.T) {
	if got := CalculateActivityLevel(nil, testNow); got != 0 {
		t.Errorf("expected 0 for empty history, got %d", got)
	}
}

func TestActivityLevelSingleStaleTransaction(t *testing.T) {
	// 100 days old: recency floors at 0; frequency is 1 tx over the
	// minimum 1-day span, 20 points weighted at 0.6.
	txs := []*entity.Transaction{txAt("a", 100*secondsPerDay)}
	if got := CalculateActivityLevel(txs, testNow); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
}

func TestActivityLevelBusyRecentWallet(t *testing.T) {
	txs := make([]*entity.Transaction, 0, 48)
	for i := int64(0); i < 48; i++ {
		txs = append(txs, txAt(string(rune('a'+i)), i*3600))
	}
	// Last tx just now, ~24 txs/day: both components saturate.
	if got := CalculateActivityLevel(txs, testNow); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestActivityLevelOrderingByRecency(t *testing.T) {
	recent := []*entity.Transaction{txAt("a", 0), txAt("b", secondsPerDay)}
	stale := []*entity.Transaction{txAt("c", 60*secondsPerDay), txAt("d", 61*secondsPerDay)}
	if CalculateActivityLevel(recent, testNow) <= CalculateActivityLevel(stale, testNow) {
		t.Error("recent wallet should outscore stale wallet")
	}
}

func TestActivityLevelBounds(t *testing.T) {
	cases := [][]*entity.Transaction{
		nil,
		{txAt("a", 0)},
		{txAt("a", 1000*secondsPerDay)},
		{txAt("a", 0), txAt("b", 1), txAt("c", 2)},
	}
	for i, txs := range cases {
		got := CalculateActivityLevel(txs, testNow)
		if got < 0 || got > 100 {
			t.Errorf("case %d: activity %d out of [0,100]", i, got)
		}
	}
}

func TestSecurityScoreBaseline(t *testing.T) {
	if got := CalculateSecurityScore(nil, nil); got != securityBaseScore {
		t.Errorf("expected base score %d, got %d", securityBaseScore, got)
	}
}

func TestSecurityScoreDiversityBonuses(t *testing.T) {
	// All ten transactions to one recipient: 10% distinct, +15.
	loyal := make([]*entity.Transaction, 10)
	for i := range loyal {
		loyal[i] = &entity.Transaction{Hash: string(rune('a' + i)), To: "0xsame", Timestamp: 1}
	}
	if got := CalculateSecurityScore(loyal, nil); got != 90 {
		t.Errorf("expected 90 with strong concentration bonus, got %d", got)
	}

	// Four distinct recipients over ten transactions: 40% distinct, +5.
	mixed := make([]*entity.Transaction, 10)
	for i := range mixed {
		mixed[i] = &entity.Transaction{Hash: string(rune('a' + i)), To: "0x" + string(rune('w'+i%4)), Timestamp: 1}
	}
	if got := CalculateSecurityScore(mixed, nil); got != 80 {
		t.Errorf("expected 80 with moderate concentration bonus, got %d", got)
	}
}

func TestSecurityScoreRiskyInteractionPenalty(t *testing.T) {
	interactions := []*entity.Transaction{
		{Hash: "0x1", To: "0x722122dF12D4e14e13Ac3b6895a86e84145b6967", Input: "0xdead"},
		{Hash: "0x2", To: "0x722122df12d4e14e13ac3b6895a86e84145b6967", Input: "0xbeef"},
	}
	if got := CalculateSecurityScore(nil, interactions); got != securityBaseScore-2*riskyInteractionPenalty {
		t.Errorf("expected two risky penalties applied, got %d", got)
	}
}

func TestSecurityScoreClampedToZero(t *testing.T) {
	interactions := make([]*entity.Transaction, 30)
	for i := range interactions {
		interactions[i] = &entity.Transaction{Hash: string(rune(i)), To: "0x722122df12d4e14e13ac3b6895a86e84145b6967", Input: "0x1"}
	}
	if got := CalculateSecurityScore(nil, interactions); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}

func TestDeriveRiskScoreComplement(t *testing.T) {
	for _, security := range []int{0, 25, 75, 100} {
		if got := DeriveRiskScore(security); got != 100-security {
			t.Errorf("security %d: expected risk %d, got %d", security, 100-security, got)
		}
	}
}
