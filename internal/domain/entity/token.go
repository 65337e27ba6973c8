package entity

// TokenHolding represents one ERC20 position held by a wallet. Balance is a
// decimal string in the token's smallest unit; it may come from an indexer
// snapshot or from replaying the wallet's transfer history.
type TokenHolding struct {
	ContractAddress string `json:"contractAddress"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Decimals        int    `json:"decimals"`
	Balance         string `json:"balance"`
}

// NFTHolding represents one ERC721 token held by a wallet.
type NFTHolding struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
}

// TokenHoldings groups a wallet's fungible and non-fungible positions.
type TokenHoldings struct {
	ERC20  []TokenHolding `json:"erc20"`
	ERC721 []NFTHolding   `json:"erc721"`
}
