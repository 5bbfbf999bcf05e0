package progression

// AchievementStats is what achievements are unlocked from.
type AchievementStats struct {
	XP                 int
	Streak             int
	TotalCalories      float64
	WorkoutsByCategory map[string]int
}

type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`

	condition func(stats AchievementStats) bool
}

var achievements = []Achievement{
	{
		ID:          1,
		Name:        "Streak Master",
		Icon:        "🔥",
		Description: "7-Day Workout Streak",
		condition:   func(s AchievementStats) bool { return s.Streak >= 7 },
	},
	{
		ID:          2,
		Name:        "Strength Pro",
		Icon:        "🏋️",
		Description: "Completed 10 Strength Workouts",
		condition:   func(s AchievementStats) bool { return s.WorkoutsByCategory["anaerobic"] >= 10 },
	},
	{
		ID:          3,
		Name:        "Calorie Burner",
		Icon:        "💯",
		Description: "Burned 1000+ Calories",
		condition:   func(s AchievementStats) bool { return s.TotalCalories >= 1000 },
	},
	{
		ID:          4,
		Name:        "XP Climber",
		Icon:        "⭐",
		Description: "Earned over 2500 XP",
		condition:   func(s AchievementStats) bool { return s.XP >= 2500 },
	},
}

// Achievements returns all known achievements.
func Achievements() []Achievement {
	return append([]Achievement(nil), achievements...)
}

// UnlockedAchievements derives the unlocked achievements, they are never stored.
func UnlockedAchievements(stats AchievementStats) []Achievement {
	unlocked := make([]Achievement, 0, len(achievements))
	for _, a := range achievements {
		if a.condition(stats) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
