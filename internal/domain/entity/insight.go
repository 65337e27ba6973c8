package entity

// WalletSummary is the condensed view of a wallet handed to the generative
// oracle. It carries derived metrics only, never raw transaction data.
type WalletSummary struct {
	Address          string   `json:"address"`
	Chain            string   `json:"chain"`
	TransactionCount int      `json:"transactionCount"`
	ActivityLevel    int      `json:"activityLevel"`
	SecurityScore    int      `json:"securityScore"`
	TopProtocols     []string `json:"topProtocols"`
	TokenCount       int      `json:"tokenCount"`
	NFTCount         int      `json:"nftCount"`
	BehavioralTraits []string `json:"behavioralTraits,omitempty"`
}

// WalletInsights is the narrative layer of a persona, produced by the insight
// oracle on a best-effort basis.
type WalletInsights struct {
	TradingStyle       string   `json:"tradingStyle"`
	RiskTolerance      string   `json:"riskTolerance"`
	DefiSophistication string   `json:"defiSophistication"`
	BehavioralTraits   []string `json:"behavioralTraits"`
	Recommendations    []string `json:"recommendations"`
	SecurityAssessment string   `json:"securityAssessment"`
	MarketContext      string   `json:"marketContext"`
}

// DefaultWalletInsights is the documented fallback attached to a persona when
// the insight oracle is unreachable or returns an unparseable response.
func DefaultWalletInsights() *WalletInsights {
	return &WalletInsights{
		TradingStyle:       "Analysis unavailable",
		RiskTolerance:      "Unable to determine",
		DefiSophistication: "Assessment pending",
		BehavioralTraits:   []string{"Data insufficient"},
		Recommendations:    []string{"Enable detailed analysis with more transaction data"},
		SecurityAssessment: "Security analysis unavailable",
		MarketContext:      "Market context analysis pending",
	}
}

// ChatResponse is one answer in the wallet chat flow.
type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	ActionItems []string `json:"actionItems,omitempty"`
}

// DefaultChatResponse is returned when the chat oracle fails or is not
// configured.
func DefaultChatResponse() *ChatResponse {
	return &ChatResponse{
		Response: "I apologize, but I cannot process your question right now. Please try again.",
		Suggestions: []string{
			"Try asking about your top protocols",
			"Ask about risk assessment",
			"Inquire about recommendations",
		},
	}
}

// QuotaExhaustedChatResponse is returned without consulting the oracle once
// the caller's chat quota reaches zero.
func QuotaExhaustedChatResponse() *ChatResponse {
	return &ChatResponse{
		Response: "You have used all your chat questions for this analysis. Generate a new persona to ask more questions.",
		Suggestions: []string{
			"Run a fresh persona analysis",
			"Review the insights you already have",
		},
	}
}

// ChatRequest bundles everything the chat flow needs for one exchange. The
// engine keeps no conversational state; history and remaining quota travel
// with the request.
type ChatRequest struct {
	Question       string         `json:"question"`
	History        []string       `json:"history"`
	Summary        *WalletSummary `json:"walletData"`
	RemainingQuota int            `json:"remainingQuota"`
}

// RiskAssessment is the risk section of a detailed analysis report.
type RiskAssessment struct {
	Overall string   `json:"overall"`
	Factors []string `json:"factors"`
	Score   int      `json:"score"`
}

// TradingPatterns is the trading section of a detailed analysis report.
type TradingPatterns struct {
	Style       string   `json:"style"`
	Frequency   string   `json:"frequency"`
	Preferences []string `json:"preferences"`
}

// ProtocolExpertise is the expertise section of a detailed analysis report.
type ProtocolExpertise struct {
	Level           string   `json:"level"`
	Specializations []string `json:"specializations"`
	Recommendations []string `json:"recommendations"`
}

// SecurityAnalysis is the security section of a detailed analysis report.
type SecurityAnalysis struct {
	Strengths       []string `json:"strengths"`
	Vulnerabilities []string `json:"vulnerabilities"`
	Recommendations []string `json:"recommendations"`
}

// PortfolioInsights is the portfolio section of a detailed analysis report.
type PortfolioInsights struct {
	Diversification string   `json:"diversification"`
	Allocation      string   `json:"allocation"`
	Suggestions     []string `json:"suggestions"`
}

// DetailedAnalysis is the five-section deep-dive report produced by the
// secondary analysis oracle.
type DetailedAnalysis struct {
	RiskAssessment    RiskAssessment    `json:"riskAssessment"`
	TradingPatterns   TradingPatterns   `json:"tradingPatterns"`
	ProtocolExpertise ProtocolExpertise `json:"protocolExpertise"`
	SecurityAnalysis  SecurityAnalysis  `json:"securityAnalysis"`
	PortfolioInsights PortfolioInsights `json:"portfolioInsights"`
}

// DefaultDetailedAnalysis is the documented fallback report used when the
// analysis oracle fails.
func DefaultDetailedAnalysis() *DetailedAnalysis {
	return &DetailedAnalysis{
		RiskAssessment: RiskAssessment{
			Overall: "Moderate risk profile with balanced approach to DeFi participation",
			Factors: []string{"Protocol diversification", "Transaction frequency", "Security practices"},
			Score:   65,
		},
		TradingPatterns: TradingPatterns{
			Style:       "Strategic DeFi participant with calculated approach",
			Frequency:   "Regular but measured transaction activity",
			Preferences: []string{"Established protocols", "Yield farming", "Liquidity provision"},
		},
		ProtocolExpertise: ProtocolExpertise{
			Level:           "Intermediate to Advanced",
			Specializations: []string{"DeFi protocols", "Yield optimization"},
			Recommendations: []string{"Explore advanced strategies", "Consider governance participation"},
		},
		SecurityAnalysis: SecurityAnalysis{
			Strengths:       []string{"Diversified protocol usage", "Regular activity monitoring"},
			Vulnerabilities: []string{"Approval management", "Smart contract risks"},
			Recommendations: []string{"Regular security audits", "Use hardware wallet"},
		},
		PortfolioInsights: PortfolioInsights{
			Diversification: "Well-diversified across multiple protocols and strategies",
			Allocation:      "Balanced allocation between different DeFi sectors",
			Suggestions:     []string{"Consider rebalancing", "Explore new yield opportunities"},
		},
	}
}
