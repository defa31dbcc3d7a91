package domain

// RewardKind distinguishes how a threshold measures progress.
type RewardKind string

const (
	// RewardKindCoin thresholds are measured against accumulated coins.
	RewardKindCoin RewardKind = "coin"
	// RewardKindStreak thresholds are measured against the current streak.
	RewardKindStreak RewardKind = "streak"
)

// StreakRewardTargetDays is the streak length a streak-kind reward unlocks at.
const StreakRewardTargetDays = 14

// RewardThreshold is one user-defined reward target. Coin-kind thresholds
// unlock when accumulated coins reach CoinCost; streak-kind thresholds unlock
// at a 14-day current streak and ignore CoinCost.
type RewardThreshold struct {
	CoinCost    int
	Description string
	Kind        RewardKind
}

// IsValid checks if the threshold has valid data.
func (r RewardThreshold) IsValid() bool {
	if r.Description == "" {
		return false
	}
	switch r.Kind {
	case RewardKindCoin:
		return r.CoinCost > 0
	case RewardKindStreak:
		return true
	default:
		return false
	}
}
