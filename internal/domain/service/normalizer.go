package service

import (
	"sort"

	"chain-persona-engine/internal/domain/entity"
)

// TransactionNormalizer merges heterogeneous transaction feeds into one
// deduplicated, consistently shaped, time-ordered set. It is stateless; the
// same inputs always produce the same output, and inputs are never mutated.
type TransactionNormalizer struct{}

// NewTransactionNormalizer creates a transaction normalizer.
func NewTransactionNormalizer() *TransactionNormalizer {
	return &TransactionNormalizer{}
}

// Merge combines the given feeds into a fresh slice with one record per
// transaction hash, sorted newest first. When the same hash appears in more
// than one feed, the record with real gas data wins; on a tie the external
// record is preferred over the internal one, otherwise the first seen stays.
func (n *TransactionNormalizer) Merge(feeds ...[]*entity.Transaction) []*entity.Transaction {
	merged := make([]*entity.Transaction, 0)
	index := make(map[string]int)

	for _, feed := range feeds {
		for _, tx := range feed {
			if tx == nil || tx.Hash == "" {
				continue
			}
			norm := n.normalize(tx)
			if at, seen := index[norm.Hash]; seen {
				if n.replaces(norm, merged[at]) {
					merged[at] = norm
				}
				continue
			}
			index[norm.Hash] = len(merged)
			merged = append(merged, norm)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})
	return merged
}

// ContractInteractions filters merged transactions down to contract
// interactions (call data present or contract deployment). Returns a fresh
// slice.
func (n *TransactionNormalizer) ContractInteractions(txs []*entity.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsContractInteraction() {
			out = append(out, tx)
		}
	}
	return out
}

// normalize copies the record and fills missing numeric fields with "0" so
// downstream arithmetic never sees an absent value.
func (n *TransactionNormalizer) normalize(tx *entity.Transaction) *entity.Transaction {
	c := *tx
	if c.Value == "" {
		c.Value = "0"
	}
	if c.GasUsed == "" {
		c.GasUsed = "0"
	}
	if c.GasPrice == "" {
		c.GasPrice = "0"
	}
	return &c
}

// replaces decides whether a duplicate record should displace the one
// already kept for the same hash.
func (n *TransactionNormalizer) replaces(candidate, current *entity.Transaction) bool {
	if candidate.HasGasData() != current.HasGasData() {
		return candidate.HasGasData()
	}
	return current.Category == entity.TxCategoryInternal &&
		candidate.Category == entity.TxCategoryExternal
}
