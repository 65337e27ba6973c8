package service

import (
	"context"

	"chain-persona-engine/internal/domain/entity"
)

// ChainDataSource fetches a wallet's history from one chain. Implementations
// validate their chain identifier at construction time; runtime fetch
// failures degrade to empty collections instead of surfacing errors, so a
// persona can always be computed from whatever data arrived.
type ChainDataSource interface {
	// GetWalletTransactions returns the wallet's regular transactions,
	// newest first, capped at limit.
	GetWalletTransactions(ctx context.Context, address string, limit int) ([]*entity.Transaction, error)

	// GetTokenBalances returns the wallet's current ERC20 and ERC721
	// positions.
	GetTokenBalances(ctx context.Context, address string) (*entity.TokenHoldings, error)

	// GetContractInteractions returns the deduplicated subset of the
	// wallet's external and internal transactions that carry call data or
	// deploy contracts.
	GetContractInteractions(ctx context.Context, address string, limit int) ([]*entity.Transaction, error)

	// ChainType returns the chain identifier this source serves.
	ChainType() string
}
