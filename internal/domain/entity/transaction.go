package entity

// TxCategory identifies the feed a transaction record was ingested from.
type TxCategory string

const (
	TxCategoryExternal TxCategory = "external"
	TxCategoryInternal TxCategory = "internal"
	TxCategoryERC20    TxCategory = "erc20"
)

// Transaction represents one on-chain event affecting a wallet. Records from
// all feeds (regular, internal, token transfer) are mapped into this shape at
// the ingestion boundary and never mutated afterwards.
type Transaction struct {
	Hash        string     `json:"hash"`
	From        string     `json:"from"`
	To          string     `json:"to"` // empty for contract deployments
	Value       string     `json:"value"`
	Timestamp   int64      `json:"timeStamp"`
	BlockNumber string     `json:"blockNumber"`
	GasUsed     string     `json:"gasUsed"`
	GasPrice    string     `json:"gasPrice"`
	Input       string     `json:"input"`
	TokenSymbol string     `json:"tokenSymbol"`
	TokenName   string     `json:"tokenName"`
	Category    TxCategory `json:"category"`
	IsError     bool       `json:"isError"`
}

// IsContractInteraction reports whether the transaction carries call data or
// represents a contract deployment (absent destination).
func (t *Transaction) IsContractInteraction() bool {
	if t.To == "" {
		return true
	}
	return t.Input != "" && t.Input != "0x" && t.Input != "0x0"
}

// IsDeployment reports whether the transaction created a contract.
func (t *Transaction) IsDeployment() bool {
	return t.To == ""
}

// HasGasData reports whether the record carries real gas fields rather than
// the "0" placeholder used by feeds that do not expose gas.
func (t *Transaction) HasGasData() bool {
	return t.GasUsed != "" && t.GasUsed != "0" && t.GasPrice != "" && t.GasPrice != "0"
}
