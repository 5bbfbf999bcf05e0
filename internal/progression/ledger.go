package progression

import (
	"errors"
	"fmt"
)

const (
	// WorkoutXP is awarded for every logged activity
	WorkoutXP = 100
	// GoalCompletionXP is awarded when a goal is marked completed by hand
	GoalCompletionXP = 1000

	baseLevelCost     = 200
	levelCostIncrease = 100
)

var ErrNegativeAmount = errors.New("negative amount")

// CostForLevel returns the XP needed to advance from level to level+1.
func CostForLevel(level int) int {
	if level <= 1 {
		return baseLevelCost
	}
	return baseLevelCost + (level-1)*levelCostIncrease
}

// LevelFromXP derives the level from cumulative XP, level 1 being the lowest.
func LevelFromXP(xp int) int {
	level := 1
	remaining := xp
	for remaining >= CostForLevel(level) {
		remaining -= CostForLevel(level)
		level++
	}
	return level
}

// CumulativeCostBeforeLevel returns the total XP needed to reach level.
func CumulativeCostBeforeLevel(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += CostForLevel(l)
	}
	return total
}

type Progress struct {
	XP             int     `json:"xp"`
	Level          int     `json:"level"`
	CurrentLevelXP int     `json:"currentLevelXp"`
	RequiredXP     int     `json:"requiredXp"`
	Ratio          float64 `json:"ratio"`
}

// ProgressWithinLevel describes how far xp is into its level.
// Ratio is clamped to [0, 1] for display.
func ProgressWithinLevel(xp int) Progress {
	level := LevelFromXP(xp)
	current := xp - CumulativeCostBeforeLevel(level)
	required := CostForLevel(level)

	ratio := float64(current) / float64(required)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	return Progress{
		XP:             xp,
		Level:          level,
		CurrentLevelXP: current,
		RequiredXP:     required,
		Ratio:          ratio,
	}
}

// Award adds amount to the ledger. XP is never spent, so negative amounts are rejected.
func Award(xp, amount int) (int, error) {
	if amount < 0 {
		return xp, fmt.Errorf("%w: xp award %d", ErrNegativeAmount, amount)
	}
	return xp + amount, nil
}
