package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chain-persona-engine/internal/domain/entity"
	"chain-persona-engine/internal/domain/service"
	"chain-persona-engine/internal/infrastructure/logger"
)

// Etherscan-family API endpoints per chain.
var baseURLs = map[string]string{
	"ethereum": "https://api.etherscan.io/api",
	"polygon":  "https://api.polygonscan.com/api",
	"bsc":      "https://api.bscscan.com/api",
}

var nativeTokens = map[string]struct{ Symbol, Name string }{
	"ethereum": {"ETH", "Ethereum"},
	"polygon":  {"MATIC", "Polygon"},
	"bsc":      {"BNB", "BNB Smart Chain"},
}

// Client fetches wallet history from an etherscan-family block explorer.
// One client serves one chain; the chain identifier is validated at
// construction. Runtime fetch failures are logged and degrade to empty
// collections so persona computation always proceeds.
type Client struct {
	chain      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	normalizer *service.TransactionNormalizer
	logger     *logger.Logger
}

// NewClient creates an explorer client for the given chain. Unsupported
// chains are a construction error.
func NewClient(chain, apiKey string, timeout time.Duration, normalizer *service.TransactionNormalizer, log *logger.Logger) (*Client, error) {
	baseURL, ok := baseURLs[chain]
	if !ok {
		return nil, fmt.Errorf("unsupported chain type: %s", chain)
	}
	return &Client{
		chain:      chain,
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		normalizer: normalizer,
		logger:     log.WithComponent("explorer-" + chain),
	}, nil
}

// ChainType returns the chain this client serves.
func (c *Client) ChainType() string {
	return c.chain
}

// GetWalletTransactions returns the wallet's regular transactions, newest
// first, capped at limit.
func (c *Client) GetWalletTransactions(ctx context.Context, address string, limit int) ([]*entity.Transaction, error) {
	raws, err := c.fetchTxList(ctx, "txlist", address, limit)
	if err != nil {
		c.logger.Warn("transaction fetch failed, continuing with empty set",
			zap.String("address", address),
			zap.Error(err))
		return []*entity.Transaction{}, nil
	}

	native := nativeTokens[c.chain]
	txs := make([]*entity.Transaction, 0, len(raws))
	for _, raw := range raws {
		tx := raw.toTransaction(entity.TxCategoryExternal)
		tx.TokenSymbol = native.Symbol
		tx.TokenName = native.Name
		txs = append(txs, tx)
	}
	return txs, nil
}

// GetContractInteractions merges the external and internal feeds and returns
// the deduplicated subset that carries call data or deploys a contract.
func (c *Client) GetContractInteractions(ctx context.Context, address string, limit int) ([]*entity.Transaction, error) {
	var external, internal []rawTransaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		external, err = c.fetchTxList(gctx, "txlist", address, limit)
		return err
	})
	g.Go(func() error {
		var err error
		internal, err = c.fetchTxList(gctx, "txlistinternal", address, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("interaction fetch failed, continuing with empty set",
			zap.String("address", address),
			zap.Error(err))
		return []*entity.Transaction{}, nil
	}

	externalTxs := make([]*entity.Transaction, 0, len(external))
	for _, raw := range external {
		externalTxs = append(externalTxs, raw.toTransaction(entity.TxCategoryExternal))
	}
	internalTxs := make([]*entity.Transaction, 0, len(internal))
	for _, raw := range internal {
		// The internal feed exposes no gas data; the "0" placeholder
		// lets the merge step prefer external records.
		tx := raw.toTransaction(entity.TxCategoryInternal)
		tx.GasUsed = "0"
		tx.GasPrice = "0"
		internalTxs = append(internalTxs, tx)
	}

	merged := c.normalizer.Merge(externalTxs, internalTxs)
	return c.normalizer.ContractInteractions(merged), nil
}

// GetTokenBalances returns the wallet's current ERC20 and ERC721 positions.
// The snapshot endpoint is preferred; when it is unavailable (it requires a
// pro API tier on most explorers) balances are reconstructed by replaying
// the transfer feed.
func (c *Client) GetTokenBalances(ctx context.Context, address string) (*entity.TokenHoldings, error) {
	holdings := &entity.TokenHoldings{
		ERC20:  []entity.TokenHolding{},
		ERC721: []entity.NFTHolding{},
	}

	if snapshot, err := c.fetchTokenSnapshot(ctx, address); err == nil && len(snapshot) > 0 {
		holdings.ERC20 = snapshot
	} else {
		if err != nil {
			c.logger.Debug("token snapshot unavailable, replaying transfers",
				zap.String("address", address),
				zap.Error(err))
		}
		holdings.ERC20 = c.replayTokenTransfers(ctx, address)
	}

	holdings.ERC721 = c.collectNFTs(ctx, address)
	return holdings, nil
}

// replayTokenTransfers reconstructs ERC20 balances from the transfer feed:
// credit inbound, debit outbound, metadata from the first transfer seen per
// contract.
func (c *Client) replayTokenTransfers(ctx context.Context, address string) []entity.TokenHolding {
	raws, err := c.fetchTxList(ctx, "tokentx", address, 0)
	if err != nil {
		c.logger.Warn("token transfer fetch failed, continuing with empty set",
			zap.String("address", address),
			zap.Error(err))
		return []entity.TokenHolding{}
	}

	wallet := strings.ToLower(address)
	type position struct {
		holding entity.TokenHolding
		balance *big.Int
	}
	order := make([]string, 0)
	positions := make(map[string]*position)

	for _, raw := range raws {
		contract := strings.ToLower(raw.ContractAddress)
		if contract == "" {
			continue
		}
		pos, ok := positions[contract]
		if !ok {
			decimals, _ := strconv.Atoi(raw.TokenDecimal)
			pos = &position{
				holding: entity.TokenHolding{
					ContractAddress: contract,
					Symbol:          raw.TokenSymbol,
					Name:            raw.TokenName,
					Decimals:        decimals,
				},
				balance: new(big.Int),
			}
			positions[contract] = pos
			order = append(order, contract)
		}

		amount, ok := new(big.Int).SetString(raw.Value, 10)
		if !ok {
			continue
		}
		if strings.ToLower(raw.To) == wallet {
			pos.balance.Add(pos.balance, amount)
		}
		if strings.ToLower(raw.From) == wallet {
			pos.balance.Sub(pos.balance, amount)
		}
	}

	holdings := make([]entity.TokenHolding, 0, len(order))
	for _, contract := range order {
		pos := positions[contract]
		if pos.balance.Sign() <= 0 {
			continue
		}
		pos.holding.Balance = pos.balance.String()
		holdings = append(holdings, pos.holding)
	}
	return holdings
}

// collectNFTs replays the ERC721 transfer feed into the set of tokens the
// wallet currently holds.
func (c *Client) collectNFTs(ctx context.Context, address string) []entity.NFTHolding {
	raws, err := c.fetchTxList(ctx, "tokennfttx", address, 0)
	if err != nil {
		c.logger.Warn("nft transfer fetch failed, continuing with empty set",
			zap.String("address", address),
			zap.Error(err))
		return []entity.NFTHolding{}
	}

	wallet := strings.ToLower(address)
	order := make([]string, 0)
	ordered := make(map[string]struct{})
	owned := make(map[string]*entity.NFTHolding)

	for _, raw := range raws {
		key := strings.ToLower(raw.ContractAddress) + "/" + raw.TokenID
		switch {
		case strings.ToLower(raw.To) == wallet:
			if _, ok := owned[key]; !ok {
				owned[key] = &entity.NFTHolding{
					ContractAddress: strings.ToLower(raw.ContractAddress),
					TokenID:         raw.TokenID,
					Symbol:          raw.TokenSymbol,
					Name:            raw.TokenName,
				}
				// A token sold and bought back keeps its original
				// position in the ordering, once.
				if _, seen := ordered[key]; !seen {
					ordered[key] = struct{}{}
					order = append(order, key)
				}
			}
		case strings.ToLower(raw.From) == wallet:
			delete(owned, key)
		}
	}

	holdings := make([]entity.NFTHolding, 0, len(owned))
	for _, key := range order {
		if nft, ok := owned[key]; ok {
			holdings = append(holdings, *nft)
		}
	}
	return holdings
}

type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type rawTransaction struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	TimeStamp       string `json:"timeStamp"`
	BlockNumber     string `json:"blockNumber"`
	GasUsed         string `json:"gasUsed"`
	GasPrice        string `json:"gasPrice"`
	Input           string `json:"input"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenName       string `json:"tokenName"`
	TokenDecimal    string `json:"tokenDecimal"`
	TokenID         string `json:"tokenID"`
}

func (r rawTransaction) toTransaction(category entity.TxCategory) *entity.Transaction {
	ts, _ := strconv.ParseInt(r.TimeStamp, 10, 64)
	return &entity.Transaction{
		Hash:        r.Hash,
		From:        strings.ToLower(r.From),
		To:          strings.ToLower(r.To),
		Value:       r.Value,
		Timestamp:   ts,
		BlockNumber: r.BlockNumber,
		GasUsed:     r.GasUsed,
		GasPrice:    r.GasPrice,
		Input:       r.Input,
		TokenSymbol: r.TokenSymbol,
		TokenName:   r.TokenName,
		Category:    category,
		IsError:     r.IsError == "1",
	}
}

type rawTokenBalance struct {
	ContractAddress string `json:"contractAddress"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Decimals        string `json:"decimals"`
	Balance         string `json:"balance"`
}

// fetchTxList calls one of the account list actions. A limit of 0 requests
// the explorer's default page size.
func (c *Client) fetchTxList(ctx context.Context, action, address string, limit int) ([]rawTransaction, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", action)
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("sort", "desc")
	if limit > 0 {
		params.Set("page", "1")
		params.Set("offset", strconv.Itoa(limit))
	}

	result, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	var raws []rawTransaction
	if err := json.Unmarshal(result, &raws); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", action, err)
	}
	return raws, nil
}

// fetchTokenSnapshot tries the pro-tier current-balance endpoint.
func (c *Client) fetchTokenSnapshot(ctx context.Context, address string) ([]entity.TokenHolding, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokenlist")
	params.Set("address", address)

	result, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}

	var raws []rawTokenBalance
	if err := json.Unmarshal(result, &raws); err != nil {
		return nil, fmt.Errorf("decode tokenlist result: %w", err)
	}

	holdings := make([]entity.TokenHolding, 0, len(raws))
	for _, raw := range raws {
		decimals, _ := strconv.Atoi(raw.Decimals)
		holdings = append(holdings, entity.TokenHolding{
			ContractAddress: strings.ToLower(raw.ContractAddress),
			Symbol:          raw.Symbol,
			Name:            raw.Name,
			Decimals:        decimals,
			Balance:         raw.Balance,
		})
	}
	return holdings, nil
}

func (c *Client) call(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build explorer request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("explorer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer returned status %d", resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode explorer response: %w", err)
	}

	// "No transactions found" comes back with status 0 and an empty
	// result array; treat it as an empty feed, not a failure.
	if envelope.Status != "1" && !strings.Contains(envelope.Message, "No transactions found") {
		return nil, fmt.Errorf("explorer error: %s", envelope.Message)
	}
	return envelope.Result, nil
}
