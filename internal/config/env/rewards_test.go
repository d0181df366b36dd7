package env

import (
	"os"
	"path/filepath"
	"testing"
)

const shippedConfig = "../../../config.yaml"

func TestShippedRewardsConfig(t *testing.T) {
	cfg, err := NewRewardsConfigFromYAML(shippedConfig)
	if err != nil {
		t.Fatalf("NewRewardsConfigFromYAML: %v", err)
	}

	free := cfg.FreeTable()
	if len(free) != 3 {
		t.Fatalf("free table has %d bands, want 3", len(free))
	}
	wantOrder := []string{"star", "token", "common"}
	for i, label := range wantOrder {
		if free[i].Label != label {
			t.Errorf("free[%d].Label = %q, want %q", i, free[i].Label, label)
		}
	}
	// Хвост 5.01 остается невзвешенным
	var mass float64
	for _, b := range free {
		mass += b.Weight
	}
	if mass < 94.99-1e-9 || mass > 94.99+1e-9 {
		t.Errorf("free table mass = %v, want 94.99", mass)
	}

	for _, boost := range []int{1, 2, 5, 10, 50} {
		table := cfg.PaidTable(boost)
		if len(table) == 0 {
			t.Fatalf("paid table for boost %d is empty", boost)
		}
		var paidMass float64
		starWeight := -1.0
		for _, b := range table {
			paidMass += b.Weight
			if b.Label == "star" {
				starWeight = b.Weight
			}
		}
		if paidMass < 100-1e-6 || paidMass > 100+1e-6 {
			t.Errorf("paid table for boost %d has mass %v, want 100", boost, paidMass)
		}
		// Звездная полоса фиксирована на 3% для всех тиров
		if starWeight != 3.00 {
			t.Errorf("paid table for boost %d has star weight %v, want 3", boost, starWeight)
		}
	}
}

func TestPaidTableUnknownBoostFallsBack(t *testing.T) {
	cfg, err := NewRewardsConfigFromYAML(shippedConfig)
	if err != nil {
		t.Fatalf("NewRewardsConfigFromYAML: %v", err)
	}

	base := cfg.PaidTable(1)
	for _, boost := range []int{0, 7, 25, -1} {
		got := cfg.PaidTable(boost)
		if len(got) != len(base) {
			t.Fatalf("PaidTable(%d) has %d bands, want %d", boost, len(got), len(base))
		}
		for i := range base {
			if got[i] != base[i] {
				t.Errorf("PaidTable(%d)[%d] = %+v, want %+v", boost, i, got[i], base[i])
			}
		}
	}
}

func TestRewardsConfigRejectsBadMass(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "paid table under 100",
			yaml: `rewards:
  free_table:
    - {label: star, weight: 50}
  paid_tables:
    - boost: 1
      bands:
        - {label: common, weight: 85}
        - {label: star, weight: 3}
`,
		},
		{
			name: "free table over 100",
			yaml: `rewards:
  free_table:
    - {label: star, weight: 60}
    - {label: token, weight: 50}
  paid_tables:
    - boost: 1
      bands:
        - {label: common, weight: 100}
`,
		},
		{
			name: "missing boost 1 table",
			yaml: `rewards:
  free_table:
    - {label: star, weight: 50}
  paid_tables:
    - boost: 5
      bands:
        - {label: common, weight: 100}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewRewardsConfigFromYAML(path); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestShippedEconomyConfig(t *testing.T) {
	cfg, err := NewEconomyConfigFromYAML(shippedConfig)
	if err != nil {
		t.Fatalf("NewEconomyConfigFromYAML: %v", err)
	}

	if got := cfg.StarsPerTon(); got != 125 {
		t.Errorf("StarsPerTon = %d, want 125", got)
	}
	if got := cfg.ReferralCommissionRate(); got != 0.20 {
		t.Errorf("ReferralCommissionRate = %v, want 0.20", got)
	}
	if got := cfg.ReferralFlatTokens(); got != 20000 {
		t.Errorf("ReferralFlatTokens = %d, want 20000", got)
	}
	if got := cfg.DailyClaimTokens(); got != 1000 {
		t.Errorf("DailyClaimTokens = %d, want 1000", got)
	}
	if got := cfg.PaidSpinCost(); got != 200 {
		t.Errorf("PaidSpinCost = %d, want 200", got)
	}
	if got := cfg.NFTValueStars(); got != 2500 {
		t.Errorf("NFTValueStars = %d, want 2500", got)
	}
}

func TestEconomyConfigRejectsInvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	bad := `economy:
  stars_per_ton: 125
  referral_commission_rate: 1.5
  paid_spin_cost: 200
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEconomyConfigFromYAML(path); err == nil {
		t.Error("expected validation error, got nil")
	}
}
