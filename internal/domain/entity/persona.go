package entity

// Archetype is one of the behavioral profiles a wallet is scored against.
type Archetype string

const (
	ArchetypeDeFiPowerUser    Archetype = "DeFi Power User"
	ArchetypeNFTCollector     Archetype = "NFT Collector"
	ArchetypeGovernance       Archetype = "Governance Participant"
	ArchetypeTrader           Archetype = "Trader"
	ArchetypeLongTermInvestor Archetype = "Long-term Investor"
	ArchetypeDeveloper        Archetype = "Developer/Builder"
	ArchetypeGaming           Archetype = "Gaming Enthusiast"
)

// AllArchetypes returns the archetype set in its canonical order. The order
// doubles as the tie-breaker when two archetypes carry equal weight.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypeDeFiPowerUser,
		ArchetypeNFTCollector,
		ArchetypeGovernance,
		ArchetypeTrader,
		ArchetypeLongTermInvestor,
		ArchetypeDeveloper,
		ArchetypeGaming,
	}
}

// ArchetypeScores maps each archetype to a weight. Raw scores are unbounded
// accumulators; normalized scores are percentages summing to 100.00.
type ArchetypeScores map[Archetype]float64

// NewArchetypeScores returns a score map with every archetype at zero.
func NewArchetypeScores() ArchetypeScores {
	scores := make(ArchetypeScores, len(AllArchetypes()))
	for _, a := range AllArchetypes() {
		scores[a] = 0
	}
	return scores
}

// Dominant returns the highest-weighted archetype, breaking ties by the
// canonical archetype order.
func (s ArchetypeScores) Dominant() Archetype {
	best := ArchetypeDeFiPowerUser
	bestScore := -1.0
	for _, a := range AllArchetypes() {
		if s[a] > bestScore {
			best = a
			bestScore = s[a]
		}
	}
	return best
}

// WalletPersona is the complete analysis result for one wallet on one chain.
// It is assembled once per request and immutable afterwards.
type WalletPersona struct {
	Address          string          `json:"address"`
	Chain            string          `json:"chain"`
	Archetypes       ArchetypeScores `json:"archetypes"`
	RiskScore        int             `json:"riskScore"`
	ActivityLevel    int             `json:"activityLevel"`
	SecurityScore    int             `json:"securityScore"`
	TransactionCount int             `json:"transactionCount"`
	TopProtocols     []string        `json:"topProtocols"`
	BehavioralTraits []string        `json:"behavioralTraits"`
	RecommendedDapps []string        `json:"recommendedDapps"`
	Insights         *WalletInsights `json:"aiInsights,omitempty"`
}
