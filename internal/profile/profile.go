package profile

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/wellness"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
	ErrCycleNotSet     = errors.New("cycle reference not set")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidActivity = errors.New("invalid activity")
	ErrInvalidTemplate = errors.New("invalid workout template")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// a single logged workout never counts for more than this in the calories per day chart
const maxChartCaloriesPerWorkout = 1000

const defaultTemplateDescription = "User-created template"

// Profile is the per-user aggregate, stored as a single document.
// Level and CurrentWellnessPhase are caches of values derived from XP and the cycle reference.
type Profile struct {
	UserID string `json:"userId"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	progression.StreakState

	// CycleEndDate is a date key, empty until the user sets a cycle reference
	CycleEndDate         string         `json:"cycleEndDate,omitempty"`
	CycleLength          int            `json:"cycleLength,omitempty"`
	CurrentWellnessPhase wellness.Phase `json:"currentWellnessPhase,omitempty"`

	Goals     []progression.Goal `json:"goals"`
	Workouts  []ActivityEntry    `json:"workouts"`
	Templates []WorkoutTemplate  `json:"templates"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewProfile(userID string, now time.Time) *Profile {
	return &Profile{
		UserID:    userID,
		XP:        0,
		Level:     progression.LevelFromXP(0),
		Goals:     []progression.Goal{},
		Workouts:  []ActivityEntry{},
		Templates: []WorkoutTemplate{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasCycle reports whether a cycle reference was set.
func (p *Profile) HasCycle() bool {
	return p.CycleEndDate != "" && p.CycleLength > 0
}

func (p *Profile) CycleReference(cal *datemath.Calendar) (wellness.CycleReference, error) {
	if !p.HasCycle() {
		return wellness.CycleReference{}, ErrCycleNotSet
	}
	refDate, err := cal.ParseDateKey(p.CycleEndDate)
	if err != nil {
		return wellness.CycleReference{}, err
	}
	return wellness.CycleReference{
		ReferenceDate: refDate,
		CycleLength:   p.CycleLength,
	}, nil
}

// ActivityEntry is one logged workout.
type ActivityEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	// Date is the date key the workout was done on
	Date     string         `json:"date"`
	Phase    wellness.Phase `json:"phase,omitempty"`
	LoggedAt time.Time      `json:"loggedAt"`
}

type ActivityInput struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Magnitude float64 `json:"magnitude"`
	// Date is optional, a date key or RFC3339 timestamp; defaults to today
	Date string `json:"date,omitempty"`
}

// WorkoutTemplate is a saved workout that can be reused when logging.
type WorkoutTemplate struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Calories        float64             `json:"calories"`
	DurationMinutes int                 `json:"duration"`
	Difficulty      wellness.Difficulty `json:"difficulty"`
	Description     string              `json:"description"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type TemplateInput struct {
	Name            string              `json:"name"`
	Category        string              `json:"category"`
	Calories        float64             `json:"calories"`
	DurationMinutes int                 `json:"duration"`
	Difficulty      wellness.Difficulty `json:"difficulty"`
	Description     string              `json:"description"`
}

// TemplateFilter narrows the template list. ByPhase keeps only the difficulties
// recommended for the current phase and is ignored while no cycle reference is set.
type TemplateFilter struct {
	ByPhase    bool
	Difficulty wellness.Difficulty
}

type TemplateList struct {
	// Phase is the phase the list was filtered by, empty when not filtered by phase
	Phase     wellness.Phase    `json:"phase,omitempty"`
	Templates []WorkoutTemplate `json:"templates"`
}

type GoalProgressInput struct {
	Amount float64 `json:"amount"`
}

type DayCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

type ProgressStats struct {
	TotalCalories  float64       `json:"totalCalories"`
	GoalsCompleted int           `json:"goalsCompleted"`
	GoalsTotal     int           `json:"goalsTotal"`
	CaloriesPerDay []DayCalories `json:"caloriesPerDay"`
}

type CycleInput struct {
	CycleEndDate string `json:"cycleEndDate"`
	CycleLength  int    `json:"cycleLength"`
}

type PhaseInfo struct {
	Phase                   wellness.Phase        `json:"phase"`
	DayInCycle              int                   `json:"dayInCycle"`
	RecommendedDifficulties []wellness.Difficulty `json:"recommendedDifficulties"`
	Tags                    []string              `json:"tags"`
}

type LogActivityResult struct {
	Activity       ActivityEntry           `json:"activity"`
	Progress       progression.Progress    `json:"progress"`
	Streak         progression.StreakState `json:"streakState"`
	CompletedGoals []string                `json:"completedGoals"`
	LevelUp        bool                    `json:"levelUp"`
}

type CompleteGoalResult struct {
	Goal     progression.Goal     `json:"goal"`
	Progress progression.Progress `json:"progress"`
	// Awarded is false when the goal was already completed
	Awarded bool `json:"awarded"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
}

// achievementStats aggregates the workout log for achievement conditions.
func (p *Profile) achievementStats() progression.AchievementStats {
	stats := progression.AchievementStats{
		XP:                 p.XP,
		Streak:             p.Current,
		WorkoutsByCategory: make(map[string]int),
	}
	for _, w := range p.Workouts {
		stats.TotalCalories += w.Calories
		stats.WorkoutsByCategory[w.Category]++
	}
	return stats
}

// progressStats derives the workout and goal totals, calories per day are sorted by date key.
func (p *Profile) progressStats() ProgressStats {
	stats := ProgressStats{
		GoalsTotal:     len(p.Goals),
		CaloriesPerDay: []DayCalories{},
	}
	for _, g := range p.Goals {
		if g.Completed {
			stats.GoalsCompleted++
		}
	}

	byDate := make(map[string]float64)
	for _, w := range p.Workouts {
		stats.TotalCalories += w.Calories
		byDate[w.Date] += math.Min(w.Calories, maxChartCaloriesPerWorkout)
	}
	for _, date := range slices.Sorted(maps.Keys(byDate)) {
		stats.CaloriesPerDay = append(stats.CaloriesPerDay, DayCalories{
			Date:     date,
			Calories: int(math.Round(byDate[date])),
		})
	}

	return stats
}

func newWorkoutTemplate(id string, in TemplateInput, now time.Time) (WorkoutTemplate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return WorkoutTemplate{}, fmt.Errorf("%w: name empty", ErrInvalidTemplate)
	}
	if strings.TrimSpace(in.Category) == "" {
		return WorkoutTemplate{}, fmt.Errorf("%w: category empty", ErrInvalidTemplate)
	}
	if in.Calories < 0 {
		return WorkoutTemplate{}, fmt.Errorf("%w: template calories %v", progression.ErrNegativeAmount, in.Calories)
	}
	if in.DurationMinutes < 0 {
		return WorkoutTemplate{}, fmt.Errorf("%w: duration %d", ErrInvalidTemplate, in.DurationMinutes)
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = wellness.DifficultyIntermediate
	}
	if !difficulty.IsValid() {
		return WorkoutTemplate{}, fmt.Errorf("%w: [%s]", wellness.ErrInvalidDifficulty, difficulty)
	}
	description := in.Description
	if description == "" {
		description = defaultTemplateDescription
	}

	return WorkoutTemplate{
		ID:              id,
		Name:            in.Name,
		Category:        in.Category,
		Calories:        in.Calories,
		DurationMinutes: in.DurationMinutes,
		Difficulty:      difficulty,
		Description:     description,
		CreatedAt:       now,
	}, nil
}

// filterTemplates applies f for the given phase, an empty phase skips the phase filter.
func filterTemplates(templates []WorkoutTemplate, phase wellness.Phase, f TemplateFilter) []WorkoutTemplate {
	filtered := make([]WorkoutTemplate, 0, len(templates))
	for _, t := range templates {
		if phase != "" && !wellness.DifficultyAllowed(phase, t.Difficulty) {
			continue
		}
		if f.Difficulty != "" && t.Difficulty != f.Difficulty {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func findWorkout(workouts []ActivityEntry, workoutID string) int {
	for i := range workouts {
		if workouts[i].ID == workoutID {
			return i
		}
	}
	return -1
}

// rederive recomputes the cached fields from their sources and reports whether any cache was stale.
func (p *Profile) rederive(cal *datemath.Calendar, today time.Time) (bool, error) {
	stale := false

	if level := progression.LevelFromXP(p.XP); p.Level != level {
		p.Level = level
		stale = true
	}

	if p.Best < p.Current {
		p.Best = p.Current
		stale = true
	}

	if !p.HasCycle() {
		if p.CurrentWellnessPhase != "" {
			p.CurrentWellnessPhase = ""
			stale = true
		}
		return stale, nil
	}

	ref, err := p.CycleReference(cal)
	if err != nil {
		return stale, err
	}
	phase, _, err := wellness.Classify(cal, ref, today)
	if err != nil {
		return stale, err
	}
	if p.CurrentWellnessPhase != phase {
		p.CurrentWellnessPhase = phase
		stale = true
	}

	return stale, nil
}
