package service

// StreakReward is a one-time bonus granted when a streak reaches an
// exact threshold length.
type StreakReward struct {
	Days    int    `json:"days"`
	XPBonus int    `json:"xp_bonus"`
	Title   string `json:"title"`
}

// defaultRewards is the reward ladder, ordered by ascending threshold.
// Each reward fires at most once per learner, on exact match only.
var defaultRewards = []StreakReward{
	{Days: 3, XPBonus: 50, Title: "Learning Starter"},
	{Days: 7, XPBonus: 100, Title: "Week Warrior"},
	{Days: 14, XPBonus: 200, Title: "Fortnight Fighter"},
	{Days: 30, XPBonus: 500, Title: "Monthly Master"},
	{Days: 60, XPBonus: 1000, Title: "Commitment Champion"},
	{Days: 100, XPBonus: 2000, Title: "Century Scholar"},
}

// rewardFor returns the reward whose threshold exactly matches the
// streak length, if any.
func rewardFor(days int) (StreakReward, bool) {
	for _, r := range defaultRewards {
		if r.Days == days {
			return r, true
		}
	}
	return StreakReward{}, false
}

// nextRewardAfter returns the first reward whose threshold is strictly
// greater than the current streak, if any.
func nextRewardAfter(current int) (StreakReward, bool) {
	for _, r := range defaultRewards {
		if r.Days > current {
			return r, true
		}
	}
	return StreakReward{}, false
}
