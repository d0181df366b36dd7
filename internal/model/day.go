package model

import "time"

// Формат календарных суток для дневных лимитов (фриспин, клейм)
const DayLayout = "2006-01-02"

// Today - текущие календарные сутки по UTC. Граница суток считается
// от сохраненной даты, а не по таймеру: единственное определение
// контракта для всех дневных гейтов
func Today() string {
	return time.Now().UTC().Format(DayLayout)
}
