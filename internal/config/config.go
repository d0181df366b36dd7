package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// Band - одна взвешенная полоса таблицы наград.
// Порядок полос в таблице является частью контракта выбора.
type Band struct {
	Label  string
	Weight float64
}

type RewardsConfig interface {
	// FreeTable таблица бесплатного спина. Сумма весов может быть
	// меньше 100: остаток - это масса исхода "ничего"
	FreeTable() []Band
	// PaidTable таблица платного спина для тира буста.
	// Неизвестный тир возвращает таблицу тира 1
	PaidTable(boost int) []Band
}

type EconomyConfig interface {
	StarsPerTon() int
	ReferralCommissionRate() float64
	ReferralFlatTokens() int
	DailyClaimTokens() int
	PaidSpinCost() int
	NFTValueStars() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}
