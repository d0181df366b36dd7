package economy

type DepositRequest struct {
	UserID    string  `json:"userId"`    // ID пользователя
	AmountTon float64 `json:"amountTon"` // Сумма депозита в TON
}

type DepositResponse struct {
	OK            bool `json:"ok"`
	CreditedStars int  `json:"creditedStars"` // Зачислено звезд
}

type DailyRequest struct {
	UserID string `json:"userId"`
}

type DailyResponse struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message,omitempty"`     // Причина отказа
	AddedTokens int    `json:"addedTokens,omitempty"` // Начислено токенов
}

type BuyBoostRequest struct {
	UserID string `json:"userId"`
	Box    string `json:"box"`  // starter / pro / elite / ultimate
	Paid   bool   `json:"paid"` // Мок оплаты
}

type BuyBoostResponse struct {
	OK    bool `json:"ok"`
	Boost int  `json:"boost"` // Установленный множитель
}

type UserResponse struct {
	User         User         `json:"user"`
	Leaderboards Leaderboards `json:"leaderboards"`
}

type User struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	StarsBalance     int     `json:"stars_balance"`
	TokenBalance     int     `json:"token_balance"`
	SpinsCount       int     `json:"spins_count"`
	BoostMult        int     `json:"boost_mult"`
	LastFreeDate     *string `json:"last_free_date"`  // YYYY-MM-DD или null
	LastClaimDate    *string `json:"last_claim_date"` // YYYY-MM-DD или null
	Referrer         *string `json:"referrer"`
	ReferralRewarded bool    `json:"referral_rewarded"`
}

type Leaderboards struct {
	Spins  []SpinnerRow   `json:"spins"`
	Miners []MinerRow     `json:"miners"`
	NFTs   []CollectorRow `json:"nfts"`
}

type SpinnerRow struct {
	Username   string `json:"username"`
	SpinsCount int    `json:"spins_count"`
}

type MinerRow struct {
	Username     string `json:"username"`
	TokenBalance int    `json:"token_balance"`
}

type CollectorRow struct {
	Username        string `json:"username"`
	NFTs            int    `json:"nfts"`
	TotalValueStars int    `json:"totalValueStars"` // Оценка: 2500 звезд за NFT
}
