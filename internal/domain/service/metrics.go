package service

import (
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/params"

	"chain-persona-engine/internal/domain/entity"
)

const secondsPerDay = 24 * 60 * 60

// Addresses with documented drainer/mixer history. Interacting with one
// costs security score.
var riskyAddresses = map[string]struct{}{
	"0x722122df12d4e14e13ac3b6895a86e84145b6967": {}, // Tornado Cash: Router
	"0x8589427373d6d84e98730d7795d8f6f8731fda16": {}, // Tornado Cash: Old Proxy
	"0xd90e2f925da726b50c4ed8d0fb90ad053324f31b": {}, // Tornado Cash: Router 2
	"0x098b716b8aaf21512996dc57eb0615e2383e2f96": {}, // Ronin Bridge exploiter
}

const (
	securityBaseScore       = 75
	riskyInteractionPenalty = 5
	securityToolThreshold   = 70
)

// CalculateActivityLevel scores how active a wallet is on a 0-100 scale as a
// weighted blend of recency (40%) and transaction frequency (60%). An empty
// history scores 0.
func CalculateActivityLevel(txs []*entity.Transaction, now time.Time) int {
	if len(txs) == 0 {
		return 0
	}

	newest, oldest := txs[0].Timestamp, txs[0].Timestamp
	for _, tx := range txs[1:] {
		if tx.Timestamp > newest {
			newest = tx.Timestamp
		}
		if tx.Timestamp < oldest {
			oldest = tx.Timestamp
		}
	}

	daysSinceLast := float64(now.Unix()-newest) / secondsPerDay
	recency := math.Max(0, 100-daysSinceLast*2)

	spanDays := float64(newest-oldest) / secondsPerDay
	txPerDay := float64(len(txs)) / math.Max(1, spanDays)
	frequency := math.Min(100, txPerDay*20)

	return clampScore(int(math.Round(recency*0.4 + frequency*0.6)))
}

// CalculateSecurityScore starts from a base of 75, subtracts 5 per
// interaction with a known-risky address, and grants recipient-diversity
// bonuses (+15 when under 20% of transactions go to distinct recipients,
// +5 under 50%). Result is clamped to [0, 100].
func CalculateSecurityScore(txs, interactions []*entity.Transaction) int {
	score := securityBaseScore

	for _, tx := range interactions {
		if _, risky := riskyAddresses[strings.ToLower(tx.To)]; risky {
			score -= riskyInteractionPenalty
		}
	}

	if len(txs) > 0 {
		unique := make(map[string]struct{})
		for _, tx := range txs {
			if tx.To != "" {
				unique[strings.ToLower(tx.To)] = struct{}{}
			}
		}
		ratio := float64(len(unique)) / float64(len(txs))
		if ratio < 0.2 {
			score += 15
		} else if ratio < 0.5 {
			score += 5
		}
	}

	return clampScore(score)
}

// DeriveRiskScore is the complement of the security score.
func DeriveRiskScore(securityScore int) int {
	return clampScore(100 - securityScore)
}

// averageNativeValue returns the mean transaction value in native units
// (ETH/MATIC/BNB), parsing wei strings with arbitrary precision. Unparseable
// values count as zero.
func averageNativeValue(txs []*entity.Transaction) float64 {
	if len(txs) == 0 {
		return 0
	}
	sum := new(big.Float)
	for _, tx := range txs {
		wei, ok := new(big.Float).SetString(tx.Value)
		if !ok {
			continue
		}
		sum.Add(sum, wei)
	}
	sum.Quo(sum, new(big.Float).SetInt64(int64(params.Ether)))
	avg, _ := sum.Quo(sum, new(big.Float).SetInt64(int64(len(txs)))).Float64()
	return avg
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
