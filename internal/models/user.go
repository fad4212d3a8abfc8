package models

import (
	"time"
)

// User represents a ThreadChain identity with its public profile.
// Username is globally unique and is the stable lookup key for profile
// navigation; ID is the stable foreign-key join target. WalletAddress
// may be empty for seed/demo users.
type User struct {
	ID             string    `json:"id"`
	WalletAddress  string    `json:"walletAddress"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"displayName"`
	Bio            string    `json:"bio,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	FollowerCount  int64     `json:"followerCount"`
	FollowingCount int64     `json:"followingCount"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}
