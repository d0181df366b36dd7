package env

import (
	"fmt"
	"math"
	"os"

	"staro_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	// Сумма весов платной таблицы обязана давать ровно 100
	fullMass = 100.0
	// Допуск на накопление погрешности float при сложении весов
	massEpsilon = 1e-6
	// Тир, на который откатываемся при неизвестном бусте
	defaultBoost = 1
)

type bandYAML struct {
	Label  string  `yaml:"label"`
	Weight float64 `yaml:"weight"`
}

type paidTableYAML struct {
	Boost int        `yaml:"boost"`
	Bands []bandYAML `yaml:"bands"`
}

type rewardsFileYAML struct {
	Rewards struct {
		FreeTable  []bandYAML      `yaml:"free_table"`
		PaidTables []paidTableYAML `yaml:"paid_tables"`
	} `yaml:"rewards"`
}

type rewardsConfig struct {
	freeTable  []config.Band
	paidTables map[int][]config.Band
}

// NewRewardsConfigFromYAML читает таблицы наград из YAML файла
// и проверяет инварианты по суммам весов
func NewRewardsConfigFromYAML(path string) (config.RewardsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewards config: %w", err)
	}

	var file rewardsFileYAML
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rewards config: %w", err)
	}

	if len(file.Rewards.FreeTable) == 0 {
		return nil, fmt.Errorf("free table is empty")
	}
	if len(file.Rewards.PaidTables) == 0 {
		return nil, fmt.Errorf("paid tables are empty")
	}

	free := toBands(file.Rewards.FreeTable)
	// У бесплатной таблицы хвост до 100 - это масса "ничего",
	// поэтому сумма может быть меньше, но не больше 100
	if mass := tableMass(free); mass > fullMass+massEpsilon {
		return nil, fmt.Errorf("free table mass %v exceeds 100", mass)
	}

	paid := make(map[int][]config.Band, len(file.Rewards.PaidTables))
	for _, t := range file.Rewards.PaidTables {
		bands := toBands(t.Bands)
		if mass := tableMass(bands); math.Abs(mass-fullMass) > massEpsilon {
			return nil, fmt.Errorf("paid table for boost %d has mass %v, want 100", t.Boost, mass)
		}
		paid[t.Boost] = bands
	}

	if _, ok := paid[defaultBoost]; !ok {
		return nil, fmt.Errorf("paid table for boost %d is required", defaultBoost)
	}

	return &rewardsConfig{
		freeTable:  free,
		paidTables: paid,
	}, nil
}

func (cfg *rewardsConfig) FreeTable() []config.Band {
	return cfg.freeTable
}

func (cfg *rewardsConfig) PaidTable(boost int) []config.Band {
	if bands, ok := cfg.paidTables[boost]; ok {
		return bands
	}
	return cfg.paidTables[defaultBoost]
}

func toBands(raw []bandYAML) []config.Band {
	bands := make([]config.Band, len(raw))
	for i, b := range raw {
		bands[i] = config.Band{
			Label:  b.Label,
			Weight: b.Weight,
		}
	}
	return bands
}

func tableMass(bands []config.Band) float64 {
	var mass float64
	for _, b := range bands {
		mass += b.Weight
	}
	return mass
}
