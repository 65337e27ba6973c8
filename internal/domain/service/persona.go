package service

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"chain-persona-engine/internal/domain/entity"
)

// PersonaService derives a behavioral persona for a wallet and answers
// follow-up questions about it.
type PersonaService interface {
	GeneratePersona(ctx context.Context, address string) (*entity.WalletPersona, error)
	Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
}

// IsValidWalletAddress reports whether address is a 0x-prefixed 20-byte hex
// address. Mixed case is accepted; checksums are not enforced.
func IsValidWalletAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}
