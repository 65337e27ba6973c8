package service

import (
	"strings"

	"chain-persona-engine/internal/domain/entity"
)

// Dapp suggestions keyed by dominant archetype.
var dappRecommendations = map[entity.Archetype][]string{
	entity.ArchetypeDeFiPowerUser:    {"Aave", "Compound", "Curve Finance", "Yearn Finance"},
	entity.ArchetypeNFTCollector:     {"SuperRare", "Foundation", "Blur", "LooksRare"},
	entity.ArchetypeGovernance:       {"Snapshot", "Tally", "Boardroom", "Commonwealth"},
	entity.ArchetypeTrader:           {"1inch", "dYdX", "GMX", "Perpetual Protocol"},
	entity.ArchetypeLongTermInvestor: {"Lido", "Rocket Pool", "Index Coop", "Convex"},
	entity.ArchetypeDeveloper:        {"Hardhat", "Tenderly", "Alchemy", "The Graph"},
	entity.ArchetypeGaming:           {"Axie Infinity", "Gods Unchained", "Illuvium", "Gala Games"},
}

// Wallet hygiene tooling suggested to wallets scoring below the security
// threshold.
var securityTools = []string{"Revoke.cash", "Wallet Guard", "DeFi Saver"}

// DeriveBehavioralTraits labels a wallet from its scores and interaction
// shape. A wallet with no transactions at all is simply Inactive.
func DeriveBehavioralTraits(securityScore, activityLevel int, txs, interactions []*entity.Transaction) []string {
	if len(txs) == 0 {
		return []string{"Inactive"}
	}

	traits := make([]string, 0, 4)

	switch {
	case securityScore < 40:
		traits = append(traits, "High Risk Tolerance")
	case securityScore > 75:
		traits = append(traits, "Conservative")
	default:
		traits = append(traits, "Balanced Risk Approach")
	}

	switch {
	case activityLevel > 70:
		traits = append(traits, "Very Active")
	case activityLevel > 40:
		traits = append(traits, "Regularly Active")
	default:
		traits = append(traits, "Selective Activity")
	}

	unique := make(map[string]struct{})
	for _, tx := range interactions {
		if tx.To != "" {
			unique[strings.ToLower(tx.To)] = struct{}{}
		}
	}
	switch {
	case len(unique) > 10:
		traits = append(traits, "Highly Diversified")
	case len(unique) > 5:
		traits = append(traits, "Well Diversified")
	case len(unique) < 3 && len(interactions) > 5:
		traits = append(traits, "Protocol Loyal")
	}

	traits = append(traits, "DeFi Savvy")
	return traits
}

// RecommendDapps suggests dapps for the dominant archetype, appending wallet
// hygiene tools when the security score falls below the threshold.
func RecommendDapps(dominant entity.Archetype, securityScore int) []string {
	recs := make([]string, 0, 7)
	recs = append(recs, dappRecommendations[dominant]...)
	if securityScore < securityToolThreshold {
		recs = append(recs, securityTools...)
	}
	return recs
}
