package model

// Три проекции лидербордов: топ-10 по спинам, по токенам и по NFT
type Leaderboards struct {
	Spins  []SpinnerRow
	Miners []MinerRow
	NFTs   []CollectorRow
}

type SpinnerRow struct {
	Username   string
	SpinsCount int
}

type MinerRow struct {
	Username     string
	TokenBalance int
}

type CollectorRow struct {
	Username        string
	NFTs            int
	TotalValueStars int
}
