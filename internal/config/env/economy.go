package env

import (
	"fmt"
	"os"

	"staro_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type economyFileYAML struct {
	Economy struct {
		StarsPerTon            int     `yaml:"stars_per_ton"`
		ReferralCommissionRate float64 `yaml:"referral_commission_rate"`
		ReferralFlatTokens     int     `yaml:"referral_flat_tokens"`
		DailyClaimTokens       int     `yaml:"daily_claim_tokens"`
		PaidSpinCost           int     `yaml:"paid_spin_cost"`
		NFTValueStars          int     `yaml:"nft_value_stars"`
	} `yaml:"economy"`
}

type economyConfig struct {
	starsPerTon            int
	referralCommissionRate float64
	referralFlatTokens     int
	dailyClaimTokens       int
	paidSpinCost           int
	nftValueStars          int
}

// NewEconomyConfigFromYAML читает экономические константы из YAML файла
func NewEconomyConfigFromYAML(path string) (config.EconomyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read economy config: %w", err)
	}

	var file economyFileYAML
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse economy config: %w", err)
	}

	e := file.Economy
	if e.StarsPerTon <= 0 {
		return nil, fmt.Errorf("stars_per_ton must be positive")
	}
	if e.ReferralCommissionRate < 0 || e.ReferralCommissionRate >= 1 {
		return nil, fmt.Errorf("referral_commission_rate must be in [0, 1)")
	}
	if e.PaidSpinCost <= 0 {
		return nil, fmt.Errorf("paid_spin_cost must be positive")
	}

	return &economyConfig{
		starsPerTon:            e.StarsPerTon,
		referralCommissionRate: e.ReferralCommissionRate,
		referralFlatTokens:     e.ReferralFlatTokens,
		dailyClaimTokens:       e.DailyClaimTokens,
		paidSpinCost:           e.PaidSpinCost,
		nftValueStars:          e.NFTValueStars,
	}, nil
}

func (cfg *economyConfig) StarsPerTon() int {
	return cfg.starsPerTon
}

func (cfg *economyConfig) ReferralCommissionRate() float64 {
	return cfg.referralCommissionRate
}

func (cfg *economyConfig) ReferralFlatTokens() int {
	return cfg.referralFlatTokens
}

func (cfg *economyConfig) DailyClaimTokens() int {
	return cfg.dailyClaimTokens
}

func (cfg *economyConfig) PaidSpinCost() int {
	return cfg.paidSpinCost
}

func (cfg *economyConfig) NFTValueStars() int {
	return cfg.nftValueStars
}
