package rng

import (
	"crypto/rand"
	"math/big"
)

// Source - источник случайности для розыгрыша наград.
// Клиент не должен иметь возможности предсказать или воспроизвести
// значения, поэтому реализация по умолчанию построена на crypto/rand.
type Source interface {
	// Rand100 возвращает число в полуинтервале [0, 100)
	// с точностью до 4 знаков после запятой
	Rand100() float64
	// IntN возвращает целое в полуинтервале [0, n)
	IntN(n int) int
}

type cryptoSource struct{}

// NewCryptoSource Криптографический источник по умолчанию
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Rand100() float64 {
	return float64(randInt(1000000)) / 10000.0
}

func (cryptoSource) IntN(n int) int {
	return randInt(n)
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибок
		panic("crypto rand failed: " + err.Error())
	}
	return int(v.Int64())
}
