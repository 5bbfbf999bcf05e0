package profile

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/wellness"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile_test

const leaderboardRebuildLimit = 10000

type profileRepo interface {
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, mutate func(p *Profile) error) (*Profile, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	TopByXP(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type leaderboardStore interface {
	SetXP(ctx context.Context, userID string, xp int) error
	Top(ctx context.Context, n int) ([]LeaderboardEntry, error)
	Rebuild(ctx context.Context, entries []LeaderboardEntry) error
}

type Service struct {
	repo            profileRepo
	leaderboard     leaderboardStore
	calendarCache   *CalendarCache
	calendar        *datemath.Calendar
	streaks         *progression.StreakTracker
	metrics         *metrics.Manager
	leaderboardSize int
	now             func() time.Time
}

type NewServiceParams struct {
	Repo            profileRepo
	Leaderboard     leaderboardStore
	CalendarCache   *CalendarCache
	Calendar        *datemath.Calendar
	MetricsManager  *metrics.Manager
	LeaderboardSize int
	// Now defaults to time.Now
	Now func() time.Time
}

func NewService(params NewServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	calendar := params.Calendar
	if calendar == nil {
		calendar = datemath.NewCalendar(nil)
	}
	metricsManager := params.MetricsManager
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}
	calendarCache := params.CalendarCache
	if calendarCache == nil {
		calendarCache = NewCalendarCache(1)
	}

	return &Service{
		repo:            params.Repo,
		leaderboard:     params.Leaderboard,
		calendarCache:   calendarCache,
		calendar:        calendar,
		streaks:         progression.NewStreakTracker(calendar),
		metrics:         metricsManager,
		leaderboardSize: params.LeaderboardSize,
		now:             now,
	}
}

func (s *Service) today() time.Time {
	return s.calendar.Today(s.now())
}

func (s *Service) CreateProfile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	p := NewProfile(userID, s.now())
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.updateLeaderboard(ctx, p)

	return p, nil
}

// GetProfile returns the profile with its cached fields re-derived.
// A stale cache is logged and the corrected values are stored.
func (s *Service) GetProfile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	stale, err := p.rederive(s.calendar, s.today())
	if err != nil {
		return nil, fmt.Errorf("rederive profile: %w", err)
	}
	if !stale {
		return p, nil
	}

	log.Warnf("profile %s: stale cached fields, correcting", userID)
	corrected, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		_, err := locked.rederive(s.calendar, s.today())
		return err
	})
	if err != nil {
		log.Errorf("profile %s: store corrected fields: %s", userID, err)
		return p, nil
	}
	return corrected, nil
}

// StartSession is the session start lapse check.
func (s *Service) StartSession(ctx context.Context, userID string) (_ progression.StreakState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.startsession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, _, err := s.checkLapse(ctx, userID)
	if err != nil {
		return progression.StreakState{}, err
	}
	return p.StreakState, nil
}

func (s *Service) checkLapse(ctx context.Context, userID string) (_ *Profile, lapsed bool, err error) {
	today := s.today()
	p, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		state, err := s.streaks.CheckForLapse(locked.StreakState, today)
		if err != nil {
			return fmt.Errorf("check for lapse: %w", err)
		}
		lapsed = progression.Lapsed(locked.StreakState, state)
		locked.StreakState = state
		_, err = locked.rederive(s.calendar, today)
		return err
	})
	if err != nil {
		return nil, false, fmt.Errorf("update profile: %w", err)
	}

	if lapsed {
		log.Debugf("profile %s: streak lapsed", userID)
		s.metrics.CounterStreakLapses.Inc()
	}
	return p, lapsed, nil
}

// LogActivity records a workout: lapse check, streak, XP award and goal consumption
// are applied to the locked profile and stored together.
func (s *Service) LogActivity(ctx context.Context, userID string, in ActivityInput) (_ *LogActivityResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.logactivity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("category", in.Category),
	)

	if in.Magnitude < 0 {
		return nil, fmt.Errorf("%w: activity magnitude %v", progression.ErrNegativeAmount, in.Magnitude)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category empty", ErrInvalidActivity)
	}

	now := s.now()
	today := s.calendar.Today(now)
	activityDate := today
	if in.Date != "" {
		activityDate, err = s.calendar.ParseDateKey(in.Date)
		if err != nil {
			return nil, err
		}
	}

	name := in.Name
	if name == "" {
		name = in.Category
	}
	entry := ActivityEntry{
		ID:       uuid.New().String(),
		Name:     name,
		Category: in.Category,
		Calories: in.Magnitude,
		Date:     s.calendar.DateKey(activityDate),
		LoggedAt: now,
	}

	var (
		lapsed         bool
		levelBefore    int
		completedGoals []string
	)
	p, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		state, err := s.streaks.CheckForLapse(locked.StreakState, today)
		if err != nil {
			return fmt.Errorf("check for lapse: %w", err)
		}
		lapsed = progression.Lapsed(locked.StreakState, state)
		locked.StreakState = s.streaks.OnActivityLogged(state, today)

		levelBefore = progression.LevelFromXP(locked.XP)
		if locked.XP, err = progression.Award(locked.XP, progression.WorkoutXP); err != nil {
			return err
		}

		goals, completed, err := progression.ConsumeActivity(locked.Goals, progression.ActivityConsumption{
			Category:  in.Category,
			Magnitude: in.Magnitude,
		})
		if err != nil {
			return err
		}
		locked.Goals = goals
		completedGoals = completed

		if locked.HasCycle() {
			ref, err := locked.CycleReference(s.calendar)
			if err != nil {
				return err
			}
			if entry.Phase, _, err = wellness.Classify(s.calendar, ref, activityDate); err != nil {
				return err
			}
		}
		locked.Workouts = append(locked.Workouts, entry)

		_, err = locked.rederive(s.calendar, today)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("log activity: %w", err)
	}

	s.metrics.CounterActivitiesLogged.WithLabelValues(in.Category).Inc()
	s.metrics.CounterXPAwarded.Add(progression.WorkoutXP)
	s.metrics.CounterGoalsCompleted.Add(float64(len(completedGoals)))
	if lapsed {
		s.metrics.CounterStreakLapses.Inc()
	}
	s.updateLeaderboard(ctx, p)

	if completedGoals == nil {
		completedGoals = []string{}
	}
	return &LogActivityResult{
		Activity:       entry,
		Progress:       progression.ProgressWithinLevel(p.XP),
		Streak:         p.StreakState,
		CompletedGoals: completedGoals,
		LevelUp:        p.Level > levelBefore,
	}, nil
}

// SetCycleReference stores a new cycle reference and the phase it yields for today.
func (s *Service) SetCycleReference(ctx context.Context, userID string, in CycleInput) (_ *PhaseInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.setcyclereference")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.Int("cycle-length", in.CycleLength),
	)

	if err := wellness.ValidateCycleLength(in.CycleLength); err != nil {
		return nil, err
	}
	cycleEnd, err := s.calendar.ParseDateKey(in.CycleEndDate)
	if err != nil {
		return nil, err
	}

	today := s.today()
	p, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		locked.CycleEndDate = s.calendar.DateKey(cycleEnd)
		locked.CycleLength = in.CycleLength
		_, err := locked.rederive(s.calendar, today)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set cycle reference: %w", err)
	}

	return s.phaseInfo(p, today)
}

func (s *Service) CurrentPhase(ctx context.Context, userID string) (_ *PhaseInfo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.currentphase")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.phaseInfo(p, s.today())
}

func (s *Service) phaseInfo(p *Profile, today time.Time) (*PhaseInfo, error) {
	ref, err := p.CycleReference(s.calendar)
	if err != nil {
		return nil, err
	}
	phase, dayInCycle, err := wellness.Classify(s.calendar, ref, today)
	if err != nil {
		return nil, err
	}
	return &PhaseInfo{
		Phase:                   phase,
		DayInCycle:              dayInCycle,
		RecommendedDifficulties: wellness.RecommendedDifficulties(phase),
		Tags:                    wellness.RecommendedTags(phase),
	}, nil
}

func (s *Service) CalendarAnnotations(ctx context.Context, userID string) (_ wellness.Annotations, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.calendarannotations")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	ref, err := p.CycleReference(s.calendar)
	if err != nil {
		return nil, err
	}

	annotations, hit, err := s.calendarCache.Project(
		ctx,
		s.calendar,
		wellness.NewProjectionParams(ref.ReferenceDate, ref.CycleLength),
	)
	if err != nil {
		return nil, fmt.Errorf("project calendar: %w", err)
	}
	if !hit {
		s.metrics.CounterCacheMisses.Inc()
	}
	return annotations, nil
}

func (s *Service) ProgressionSummary(ctx context.Context, userID string) (_ progression.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.progressionsummary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return progression.Progress{}, err
	}
	return progression.ProgressWithinLevel(p.XP), nil
}

func (s *Service) Achievements(ctx context.Context, userID string) (_ []progression.Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.achievements")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return progression.UnlockedAchievements(p.achievementStats()), nil
}

// ProgressStats derives calorie and goal totals for the progress screen.
func (s *Service) ProgressStats(ctx context.Context, userID string) (_ *ProgressStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.progressstats")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user-id", userID))

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	stats := p.progressStats()
	return &stats, nil
}

// ListWorkouts returns the workout log, only the workouts done on dateKey when it is set.
func (s *Service) ListWorkouts(ctx context.Context, userID, dateKey string) (_ []ActivityEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.listworkouts")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("date", dateKey),
	)

	if dateKey != "" {
		date, err := s.calendar.ParseDateKey(dateKey)
		if err != nil {
			return nil, err
		}
		dateKey = s.calendar.DateKey(date)
	}

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	workouts := make([]ActivityEntry, 0, len(p.Workouts))
	for _, w := range p.Workouts {
		if dateKey == "" || w.Date == dateKey {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// DeleteWorkout removes a workout from the log. XP, streak and goal progress it earned are kept.
func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.deleteworkout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("workout-id", workoutID),
	)

	if _, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		idx := findWorkout(locked.Workouts, workoutID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrWorkoutNotFound, workoutID)
		}
		locked.Workouts = slices.Delete(slices.Clone(locked.Workouts), idx, idx+1)
		return nil
	}); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	return nil
}

func (s *Service) SaveTemplate(ctx context.Context, userID string, in TemplateInput) (_ *WorkoutTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.savetemplate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("difficulty", string(in.Difficulty)),
	)

	template, err := newWorkoutTemplate(uuid.New().String(), in, s.now())
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		locked.Templates = append(locked.Templates, template)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("save template: %w", err)
	}

	return &template, nil
}

// ListTemplates returns the saved templates, by default narrowed to the difficulties
// recommended for the current wellness phase.
func (s *Service) ListTemplates(ctx context.Context, userID string, filter TemplateFilter) (_ *TemplateList, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.listtemplates")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.Bool("by-phase", filter.ByPhase),
	)

	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: [%s]", wellness.ErrInvalidDifficulty, filter.Difficulty)
	}

	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var phase wellness.Phase
	if filter.ByPhase && p.HasCycle() {
		phase = p.CurrentWellnessPhase
	}

	return &TemplateList{
		Phase:     phase,
		Templates: filterTemplates(p.Templates, phase, filter),
	}, nil
}

func (s *Service) AddGoal(ctx context.Context, userID string, params progression.NewGoalParams) (_ *progression.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.addgoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("goal-type", string(params.Kind)),
	)

	goal, err := progression.NewGoal(params, s.now())
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		locked.Goals = append(locked.Goals, goal)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("add goal: %w", err)
	}

	return &goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, userID, goalID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.deletegoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("goal-id", goalID),
	)

	if _, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		goals, err := progression.RemoveGoal(locked.Goals, goalID)
		if err != nil {
			return err
		}
		locked.Goals = goals
		return nil
	}); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	return nil
}

// CompleteGoal marks a goal completed by hand and awards GoalCompletionXP the first time.
func (s *Service) CompleteGoal(ctx context.Context, userID, goalID string) (_ *CompleteGoalResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.completegoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("goal-id", goalID),
	)

	today := s.today()
	awarded := false
	p, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		goals, changed, err := progression.CompleteGoal(locked.Goals, goalID)
		if err != nil {
			return err
		}
		locked.Goals = goals
		awarded = changed
		if changed {
			if locked.XP, err = progression.Award(locked.XP, progression.GoalCompletionXP); err != nil {
				return err
			}
		}
		_, err = locked.rederive(s.calendar, today)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("complete goal: %w", err)
	}

	if awarded {
		s.metrics.CounterGoalsCompleted.Inc()
		s.metrics.CounterXPAwarded.Add(progression.GoalCompletionXP)
		s.updateLeaderboard(ctx, p)
	}

	return &CompleteGoalResult{
		Goal:     p.Goals[progression.FindGoal(p.Goals, goalID)],
		Progress: progression.ProgressWithinLevel(p.XP),
		Awarded:  awarded,
	}, nil
}

// ProgressGoal records manual progress on a single goal, for goals no activity consumes.
// The goal completing awards GoalCompletionXP once.
func (s *Service) ProgressGoal(ctx context.Context, userID, goalID string, in GoalProgressInput) (_ *CompleteGoalResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.progressgoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user-id", userID),
		attribute.String("goal-id", goalID),
	)

	today := s.today()
	awarded := false
	p, err := s.repo.Update(ctx, userID, func(locked *Profile) error {
		goals, completed, err := progression.ConsumeGoal(locked.Goals, goalID, in.Amount)
		if err != nil {
			return err
		}
		locked.Goals = goals
		awarded = completed
		if completed {
			if locked.XP, err = progression.Award(locked.XP, progression.GoalCompletionXP); err != nil {
				return err
			}
		}
		_, err = locked.rederive(s.calendar, today)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("progress goal: %w", err)
	}

	if awarded {
		s.metrics.CounterGoalsCompleted.Inc()
		s.metrics.CounterXPAwarded.Add(progression.GoalCompletionXP)
		s.updateLeaderboard(ctx, p)
	}

	return &CompleteGoalResult{
		Goal:     p.Goals[progression.FindGoal(p.Goals, goalID)],
		Progress: progression.ProgressWithinLevel(p.XP),
		Awarded:  awarded,
	}, nil
}

func (s *Service) Leaderboard(ctx context.Context) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.leaderboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if s.leaderboard == nil {
		return []LeaderboardEntry{}, nil
	}

	entries, err := s.leaderboard.Top(ctx, s.leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("leaderboard top: %w", err)
	}
	return entries, nil
}

// RebuildLeaderboard reloads the redis leaderboard from the stored profiles.
func (s *Service) RebuildLeaderboard(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.rebuildleaderboard")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if s.leaderboard == nil {
		log.Debugln("no leaderboard store, skipping rebuild")
		return nil
	}

	entries, err := s.repo.TopByXP(ctx, leaderboardRebuildLimit)
	if err != nil {
		return fmt.Errorf("top by xp: %w", err)
	}
	if err := s.leaderboard.Rebuild(ctx, entries); err != nil {
		return fmt.Errorf("rebuild leaderboard: %w", err)
	}
	log.Infof("leaderboard rebuilt with %d entries", len(entries))
	return nil
}

// SweepLapsedStreaks runs the lapse check over every profile. A failing profile does not stop the sweep.
func (s *Service) SweepLapsedStreaks(ctx context.Context) (lapsedCount int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.sweeplapsedstreaks")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := time.Now()
	defer func() {
		s.metrics.HistLapseSweepDuration.Observe(time.Since(start).Seconds())
	}()

	userIDs, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list user ids: %w", err)
	}

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			err = multierr.Append(err, ctx.Err())
			break
		}
		_, lapsed, checkErr := s.checkLapse(ctx, userID)
		if checkErr != nil {
			err = multierr.Append(err, fmt.Errorf("user %s: %w", userID, checkErr))
			continue
		}
		if lapsed {
			lapsedCount++
		}
	}

	span.SetAttributes(
		attribute.Int("profiles", len(userIDs)),
		attribute.Int("lapsed", lapsedCount),
	)
	return lapsedCount, err
}

// updateLeaderboard is best effort, the profile document stays the source of truth.
func (s *Service) updateLeaderboard(ctx context.Context, p *Profile) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.SetXP(ctx, p.UserID, p.XP); err != nil {
		log.Errorf("update leaderboard for %s: %s", p.UserID, err)
	}
}
