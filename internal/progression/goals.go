package progression

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("invalid goal")
)

// GoalKind can be one of:
//   - calories (cumulative decrement: logged activity magnitude is consumed against the target)
//   - frequency
//   - weight
type GoalKind string

const (
	GoalKindCalories  GoalKind = "calories"
	GoalKindFrequency GoalKind = "frequency"
	GoalKindWeight    GoalKind = "weight"
)

func (k GoalKind) IsValid() bool {
	switch k {
	case GoalKindCalories,
		GoalKindFrequency,
		GoalKindWeight:
		return true
	default:
		return false
	}
}

// Consumable reports whether activities are consumed against goals of this kind.
func (k GoalKind) Consumable() bool {
	return k == GoalKindCalories
}

type Goal struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Kind     GoalKind `json:"goalType"`
	Category string   `json:"category"`
	Unit     string   `json:"unit"`
	// TargetValue is what is left to achieve, it never grows
	TargetValue float64 `json:"targetValue"`
	// InitialTargetValue is the target at creation time, only used for progress display
	InitialTargetValue float64   `json:"initialTargetValue"`
	Completed          bool      `json:"completed"`
	Deadline           time.Time `json:"deadline"`
	CreatedAt          time.Time `json:"createdAt"`
}

type NewGoalParams struct {
	Title        string   `json:"title"`
	Kind         GoalKind `json:"goalType"`
	Category     string   `json:"category"`
	Unit         string   `json:"unit"`
	TargetValue  float64  `json:"targetValue"`
	DurationDays int      `json:"durationDays"`
}

func NewGoal(params NewGoalParams, now time.Time) (Goal, error) {
	if params.Title == "" {
		return Goal{}, fmt.Errorf("%w: title empty", ErrInvalidGoal)
	}
	if !params.Kind.IsValid() {
		return Goal{}, fmt.Errorf("%w: unknown goal type [%s]", ErrInvalidGoal, params.Kind)
	}
	if params.TargetValue < 0 {
		return Goal{}, fmt.Errorf("%w: target value %v", ErrNegativeAmount, params.TargetValue)
	}
	if params.DurationDays <= 0 {
		return Goal{}, fmt.Errorf("%w: duration days %d", ErrInvalidGoal, params.DurationDays)
	}

	return Goal{
		ID:                 uuid.New().String(),
		Title:              params.Title,
		Kind:               params.Kind,
		Category:           params.Category,
		Unit:               params.Unit,
		TargetValue:        params.TargetValue,
		InitialTargetValue: params.TargetValue,
		Completed:          false,
		Deadline:           now.AddDate(0, 0, params.DurationDays),
		CreatedAt:          now,
	}, nil
}

// ProgressRatio is 1 - target/initial, clamped to [0, 1]. Goals created with a zero target report 0.
func (g Goal) ProgressRatio() float64 {
	if g.InitialTargetValue <= 0 {
		return 0
	}
	ratio := 1 - g.TargetValue/g.InitialTargetValue
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

func (g Goal) consume(magnitude float64) Goal {
	g.TargetValue -= magnitude
	if g.TargetValue < 0 {
		g.TargetValue = 0
	}
	g.Completed = g.TargetValue == 0
	return g
}

// ActivityConsumption is the part of a logged activity goals are consumed against.
type ActivityConsumption struct {
	Category  string
	Magnitude float64
}

// ConsumeActivity decrements every open calories goal of the activity category by its magnitude.
// Goals reaching zero become completed and are left alone from then on.
// Returns a new goals slice and the IDs of goals completed by this activity.
func ConsumeActivity(goals []Goal, activity ActivityConsumption) ([]Goal, []string, error) {
	if activity.Magnitude < 0 {
		return nil, nil, fmt.Errorf("%w: activity magnitude %v", ErrNegativeAmount, activity.Magnitude)
	}

	updated := make([]Goal, len(goals))
	var completedIDs []string
	for i, g := range goals {
		if g.Completed || !g.Kind.Consumable() || g.Category != activity.Category {
			updated[i] = g
			continue
		}
		updated[i] = g.consume(activity.Magnitude)
		if updated[i].Completed {
			completedIDs = append(completedIDs, g.ID)
		}
	}

	return updated, completedIDs, nil
}

// ConsumeGoal decrements a single goal by ID. Consuming a completed goal changes nothing.
func ConsumeGoal(goals []Goal, goalID string, magnitude float64) ([]Goal, bool, error) {
	if magnitude < 0 {
		return nil, false, fmt.Errorf("%w: magnitude %v", ErrNegativeAmount, magnitude)
	}

	idx := FindGoal(goals, goalID)
	if idx < 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	}

	updated := append([]Goal(nil), goals...)
	if updated[idx].Completed {
		return updated, false, nil
	}
	updated[idx] = updated[idx].consume(magnitude)
	return updated, updated[idx].Completed, nil
}

// CompleteGoal marks a goal completed by hand. Completion is one-way, so
// completing an already completed goal reports false and changes nothing.
func CompleteGoal(goals []Goal, goalID string) ([]Goal, bool, error) {
	idx := FindGoal(goals, goalID)
	if idx < 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	}

	updated := append([]Goal(nil), goals...)
	if updated[idx].Completed {
		return updated, false, nil
	}
	updated[idx].Completed = true
	return updated, true, nil
}

func RemoveGoal(goals []Goal, goalID string) ([]Goal, error) {
	idx := FindGoal(goals, goalID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	}

	updated := make([]Goal, 0, len(goals)-1)
	updated = append(updated, goals[:idx]...)
	updated = append(updated, goals[idx+1:]...)
	return updated, nil
}

// FindGoal returns the index of the goal with goalID, or -1.
func FindGoal(goals []Goal, goalID string) int {
	for i := range goals {
		if goals[i].ID == goalID {
			return i
		}
	}
	return -1
}
