package service

import (
	"testing"

	"chain-persona-engine/internal/domain/entity"
)

func containsTrait(traits []string, want string) bool {
	for _, tr := range traits {
		if tr == want {
			return true
		}
	}
	return false
}

func TestDeriveBehavioralTraitsInactiveWallet(t *testing.T) {
	traits := DeriveBehavioralTraits(75, 0, nil, nil)
	if len(traits) != 1 || traits[0] != "Inactive" {
		t.Errorf("expected [Inactive], got %v", traits)
	}
}

func TestDeriveBehavioralTraitsRiskBands(t *testing.T) {
	txs := []*entity.Transaction{{Hash: "0x1", To: "0xa"}}

	cases := []struct {
		security int
		want     string
	}{
		{30, "High Risk Tolerance"},
		{60, "Balanced Risk Approach"},
		{80, "Conservative"},
	}
	for _, c := range cases {
		traits := DeriveBehavioralTraits(c.security, 50, txs, nil)
		if !containsTrait(traits, c.want) {
			t.Errorf("security %d: expected %q in %v", c.security, c.want, traits)
		}
	}
}

func TestDeriveBehavioralTraitsActivityBands(t *testing.T) {
	txs := []*entity.Transaction{{Hash: "0x1", To: "0xa"}}

	cases := []struct {
		activity int
		want     string
	}{
		{80, "Very Active"},
		{50, "Regularly Active"},
		{10, "Selective Activity"},
	}
	for _, c := range cases {
		traits := DeriveBehavioralTraits(75, c.activity, txs, nil)
		if !containsTrait(traits, c.want) {
			t.Errorf("activity %d: expected %q in %v", c.activity, c.want, traits)
		}
	}
}

func TestDeriveBehavioralTraitsDiversification(t *testing.T) {
	txs := []*entity.Transaction{{Hash: "0x1", To: "0xa"}}

	wide := make([]*entity.Transaction, 12)
	for i := range wide {
		wide[i] = &entity.Transaction{Hash: string(rune('a' + i)), To: "0x" + string(rune('a'+i)), Input: "0x1"}
	}
	if traits := DeriveBehavioralTraits(75, 50, txs, wide); !containsTrait(traits, "Highly Diversified") {
		t.Errorf("expected Highly Diversified, got %v", traits)
	}

	loyal := make([]*entity.Transaction, 8)
	for i := range loyal {
		loyal[i] = &entity.Transaction{Hash: string(rune('a' + i)), To: "0xsame", Input: "0x1"}
	}
	if traits := DeriveBehavioralTraits(75, 50, txs, loyal); !containsTrait(traits, "Protocol Loyal") {
		t.Errorf("expected Protocol Loyal, got %v", traits)
	}
}

func TestRecommendDappsByDominantArchetype(t *testing.T) {
	recs := RecommendDapps(entity.ArchetypeTrader, 90)
	if !containsTrait(recs, "1inch") || !containsTrait(recs, "dYdX") {
		t.Errorf("trader recommendations missing: %v", recs)
	}
	if containsTrait(recs, "Revoke.cash") {
		t.Error("security tools should not appear for a high security score")
	}
}

func TestRecommendDappsAppendsSecurityTools(t *testing.T) {
	recs := RecommendDapps(entity.ArchetypeDeFiPowerUser, 50)
	for _, tool := range []string{"Revoke.cash", "Wallet Guard", "DeFi Saver"} {
		if !containsTrait(recs, tool) {
			t.Errorf("expected %s in %v", tool, recs)
		}
	}
}
