package wellness

import "errors"

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty of a workout template.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

var phaseDifficulties = map[Phase][]Difficulty{
	PhaseRecovery:   {DifficultyBeginner},
	PhaseActivation: {DifficultyBeginner, DifficultyIntermediate},
	PhasePeak:       {DifficultyIntermediate, DifficultyAdvanced},
	PhaseTaper:      {DifficultyBeginner, DifficultyIntermediate},
}

var phaseTags = map[Phase][]string{
	PhaseRecovery:   {"stretch", "yoga", "light"},
	PhaseActivation: {"strength", "endurance", "aerobic"},
	PhasePeak:       {"HIIT", "power", "challenge"},
	PhaseTaper:      {"moderate", "mobility", "core"},
}

// RecommendedDifficulties returns the workout difficulties suited to the phase.
// A copy is returned, callers may modify it.
func RecommendedDifficulties(phase Phase) []Difficulty {
	return append([]Difficulty(nil), phaseDifficulties[phase]...)
}

func RecommendedTags(phase Phase) []string {
	return append([]string(nil), phaseTags[phase]...)
}

// DifficultyAllowed reports whether a template of the given difficulty fits the phase.
// An unknown phase filters nothing.
func DifficultyAllowed(phase Phase, difficulty Difficulty) bool {
	allowed, ok := phaseDifficulties[phase]
	if !ok {
		return true
	}
	for _, d := range allowed {
		if d == difficulty {
			return true
		}
	}
	return false
}
