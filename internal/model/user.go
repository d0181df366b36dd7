package model

import "time"

type User struct {
	ID               string
	Username         string
	StarsBalance     int
	TokenBalance     int
	SpinsCount       int
	BoostMult        int
	LastFreeDate     *time.Time
	LastClaimDate    *time.Time
	Referrer         *string
	ReferralRewarded bool
}
