package model

type DepositResult struct {
	OK            bool
	CreditedStars int
}

type DailyResult struct {
	OK          bool
	Message     string
	AddedTokens int
}

type BoostResult struct {
	OK    bool
	Boost int
}

type UserInfo struct {
	User         User
	Leaderboards Leaderboards
}
