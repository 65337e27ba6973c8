package entity

// ProtocolCategory classifies what kind of dapp a contract belongs to.
type ProtocolCategory string

const (
	CategoryDeFi       ProtocolCategory = "defi"
	CategoryNFT        ProtocolCategory = "nft"
	CategoryGaming     ProtocolCategory = "gaming"
	CategoryStaking    ProtocolCategory = "staking"
	CategoryGovernance ProtocolCategory = "governance"
	CategoryBridge     ProtocolCategory = "bridge"
	CategoryExchange   ProtocolCategory = "exchange"
	CategoryLending    ProtocolCategory = "lending"
	CategoryUnknown    ProtocolCategory = "unknown"
)

// ParseProtocolCategory maps free-form category text (e.g. from an oracle
// response) to a known category, defaulting to unknown.
func ParseProtocolCategory(s string) ProtocolCategory {
	switch ProtocolCategory(s) {
	case CategoryDeFi, CategoryNFT, CategoryGaming, CategoryStaking,
		CategoryGovernance, CategoryBridge, CategoryExchange, CategoryLending:
		return ProtocolCategory(s)
	default:
		return CategoryUnknown
	}
}

// ProtocolEntry is one row of the static per-chain protocol table.
type ProtocolEntry struct {
	Name     string           `json:"name"`
	Category ProtocolCategory `json:"category"`
}

// ProtocolMatch is the result of resolving a contract address to a protocol
// identity. Confidence is 100 for static-table hits, the oracle's own score
// for oracle hits, and 0 for the placeholder fallback.
type ProtocolMatch struct {
	Address    string           `json:"address"`
	Name       string           `json:"name"`
	Category   ProtocolCategory `json:"category"`
	Confidence int              `json:"confidence"`
}

// ProtocolAnalysis is an oracle's opinion about an unknown contract.
type ProtocolAnalysis struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}
