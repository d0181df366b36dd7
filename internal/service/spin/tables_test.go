package spin

import (
	"testing"

	"staro_backend/internal/config"
	"staro_backend/pkg/rng"
)

func TestPickBandDeterministic(t *testing.T) {
	table := fakeRewardsCfg{}.PaidTable(1)

	first := pickBand(table, 49.999)
	for i := 0; i < 100; i++ {
		if got := pickBand(table, 49.999); got != first {
			t.Fatalf("pickBand not deterministic: got %q, want %q", got, first)
		}
	}
	if first != bandCommon {
		t.Fatalf("pickBand(table, 49.999) = %q, want %q", first, bandCommon)
	}
}

func TestPickBandPaidBoundaries(t *testing.T) {
	table := fakeRewardsCfg{}.PaidTable(1)

	tests := []struct {
		r    float64
		want string
	}{
		{0, bandCommon},
		{84.9999, bandCommon},
		{85, bandMedium},
		{90, bandMedium}, // сценарий из платного спина: 85 <= 90 < 95
		{94.9999, bandMedium},
		{95, bandHigh},
		{96.9999, bandHigh},
		{97, bandStar},
		{99.9999, bandStar},
	}
	for _, tt := range tests {
		if got := pickBand(table, tt.r); got != tt.want {
			t.Errorf("pickBand(paid, %v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestPickBandFreeTail(t *testing.T) {
	table := fakeRewardsCfg{}.FreeTable()

	tests := []struct {
		r    float64
		want string
	}{
		{0, bandStar},
		{49.9999, bandStar},
		{50, bandToken},
		{84.9899, bandToken},
		{84.99, bandCommon},
		{94.9899, bandCommon},
		// Невзвешенный хвост 5.01 - масса исхода "ничего"
		{94.99, bandNothing},
		{99.9999, bandNothing},
	}
	for _, tt := range tests {
		if got := pickBand(table, tt.r); got != tt.want {
			t.Errorf("pickBand(free, %v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

// Частоты исходов на большом числе розыгрышей сходятся
// к объявленным весам таблицы
func TestPickBandFrequencies(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}

	table := fakeRewardsCfg{}.FreeTable()
	src := rng.NewCryptoSource()

	const trials = 200000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[pickBand(table, src.Rand100())]++
	}

	expected := map[string]float64{
		bandStar:    50.00,
		bandToken:   34.99,
		bandCommon:  10.00,
		bandNothing: 5.01,
	}
	// Допуск в один процентный пункт при 200000 испытаний
	const tolerance = 1.0
	for band, weight := range expected {
		got := float64(counts[band]) / trials * 100
		if got < weight-tolerance || got > weight+tolerance {
			t.Errorf("band %q frequency %.2f%%, want %.2f%% +/- %.1f", band, got, weight, tolerance)
		}
	}
}

func TestPickBandEmptyTable(t *testing.T) {
	if got := pickBand(nil, 0); got != bandNothing {
		t.Fatalf("pickBand(nil, 0) = %q, want %q", got, bandNothing)
	}
}

func TestPickBandIgnoresTrailingMassAboveDraw(t *testing.T) {
	// Порядок полос - часть контракта: одинаковые веса,
	// разный порядок - разный результат
	forward := []config.Band{
		{Label: "a", Weight: 50},
		{Label: "b", Weight: 50},
	}
	backward := []config.Band{
		{Label: "b", Weight: 50},
		{Label: "a", Weight: 50},
	}

	if got := pickBand(forward, 25); got != "a" {
		t.Errorf("pickBand(forward, 25) = %q, want a", got)
	}
	if got := pickBand(backward, 25); got != "b" {
		t.Errorf("pickBand(backward, 25) = %q, want b", got)
	}
}
