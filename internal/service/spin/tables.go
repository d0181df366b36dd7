package spin

import "staro_backend/internal/config"

// Метки полос таблиц наград
const (
	bandStar    = "star"
	bandToken   = "token"
	bandCommon  = "common"
	bandMedium  = "medium"
	bandHigh    = "high"
	bandNothing = "nothing"
)

// pickBand выбирает ровно одну полосу по значению r из [0, 100).
// Веса складываются в объявленном порядке таблицы, выбирается первая
// полоса, чья накопительная сумма превышает r. Если r попадает в
// невзвешенный хвост таблицы - возвращается полоса "ничего".
// Функция чистая: для одной пары (таблица, r) результат всегда один
func pickBand(bands []config.Band, r float64) string {
	cumulative := 0.0
	for _, b := range bands {
		cumulative += b.Weight
		if r < cumulative {
			return b.Label
		}
	}
	return bandNothing
}
