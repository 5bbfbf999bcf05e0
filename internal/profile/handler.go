package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/middleware"
	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/wellness"
	"github.com/2beens/fitquest/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type service interface {
	CreateProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	StartSession(ctx context.Context, userID string) (progression.StreakState, error)
	LogActivity(ctx context.Context, userID string, in ActivityInput) (*LogActivityResult, error)
	SetCycleReference(ctx context.Context, userID string, in CycleInput) (*PhaseInfo, error)
	CurrentPhase(ctx context.Context, userID string) (*PhaseInfo, error)
	CalendarAnnotations(ctx context.Context, userID string) (wellness.Annotations, error)
	ProgressionSummary(ctx context.Context, userID string) (progression.Progress, error)
	Achievements(ctx context.Context, userID string) ([]progression.Achievement, error)
	AddGoal(ctx context.Context, userID string, params progression.NewGoalParams) (*progression.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	CompleteGoal(ctx context.Context, userID, goalID string) (*CompleteGoalResult, error)
	ProgressGoal(ctx context.Context, userID, goalID string, in GoalProgressInput) (*CompleteGoalResult, error)
	ProgressStats(ctx context.Context, userID string) (*ProgressStats, error)
	ListWorkouts(ctx context.Context, userID, dateKey string) ([]ActivityEntry, error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) error
	SaveTemplate(ctx context.Context, userID string, in TemplateInput) (*WorkoutTemplate, error)
	ListTemplates(ctx context.Context, userID string, filter TemplateFilter) (*TemplateList, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	logActivityAllowedPerMin int,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/leaderboard", h.HandleLeaderboard).Methods("GET", "OPTIONS").Name("leaderboard")
	mainRouter.HandleFunc("/achievements", h.HandleAchievementCatalog).Methods("GET", "OPTIONS").Name("achievement-catalog")

	usersRouter := mainRouter.PathPrefix("/users/{userId}").Subrouter()
	usersRouter.HandleFunc("/profile", h.HandleCreateProfile).Methods("POST", "OPTIONS").Name("create-profile")
	usersRouter.HandleFunc("/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	usersRouter.HandleFunc("/session", h.HandleStartSession).Methods("POST", "OPTIONS").Name("start-session")
	usersRouter.Handle(
		"/activities",
		middleware.RateLimit(rateLimiter, "log-activity", logActivityAllowedPerMin, metricsManager)(
			http.HandlerFunc(h.HandleLogActivity),
		),
	).Methods("POST", "OPTIONS").Name("log-activity")
	usersRouter.HandleFunc("/activities", h.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-activities")
	usersRouter.HandleFunc("/activities/{activityId}", h.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-activity")
	usersRouter.HandleFunc("/templates", h.HandleSaveTemplate).Methods("POST", "OPTIONS").Name("save-template")
	usersRouter.HandleFunc("/templates", h.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-templates")
	usersRouter.HandleFunc("/cycle", h.HandleSetCycleReference).Methods("PUT", "OPTIONS").Name("set-cycle")
	usersRouter.HandleFunc("/phase", h.HandleCurrentPhase).Methods("GET", "OPTIONS").Name("current-phase")
	usersRouter.HandleFunc("/calendar", h.HandleCalendar).Methods("GET", "OPTIONS").Name("calendar")
	usersRouter.HandleFunc("/progression", h.HandleProgression).Methods("GET", "OPTIONS").Name("progression")
	usersRouter.HandleFunc("/stats", h.HandleProgressStats).Methods("GET", "OPTIONS").Name("progress-stats")
	usersRouter.HandleFunc("/achievements", h.HandleAchievements).Methods("GET", "OPTIONS").Name("achievements")
	usersRouter.HandleFunc("/goals", h.HandleAddGoal).Methods("POST", "OPTIONS").Name("add-goal")
	usersRouter.HandleFunc("/goals/{goalId}", h.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("delete-goal")
	usersRouter.HandleFunc("/goals/{goalId}/complete", h.HandleCompleteGoal).Methods("POST", "OPTIONS").Name("complete-goal")
	usersRouter.HandleFunc("/goals/{goalId}/progress", h.HandleProgressGoal).Methods("POST", "OPTIONS").Name("progress-goal")
}

// statusForError maps domain errors to http status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, progression.ErrGoalNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProfileExists),
		errors.Is(err, ErrCycleNotSet):
		return http.StatusConflict
	case errors.Is(err, wellness.ErrInvalidCycleLength),
		errors.Is(err, wellness.ErrInvalidProjection),
		errors.Is(err, datemath.ErrInvalidDateInput),
		errors.Is(err, progression.ErrNegativeAmount),
		errors.Is(err, progression.ErrInvalidGoal),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidActivity),
		errors.Is(err, ErrInvalidTemplate),
		errors.Is(err, wellness.ErrInvalidDifficulty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, operation string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", operation, err)
		http.Error(w, operation+" failed", status)
		return
	}
	log.Debugf("%s: %s", operation, err)
	http.Error(w, err.Error(), status)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, operation string, v any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Errorf("%s, unmarshal json params: %s", operation, err)
		http.Error(w, operation+" failed", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.create")
	defer span.End()

	p, err := h.service.CreateProfile(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "create profile", err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusCreated)
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	p, err := h.service.GetProfile(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "get profile", err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.session")
	defer span.End()

	streak, err := h.service.StartSession(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "start session", err)
		return
	}
	pkg.WriteJSON(w, streak, http.StatusOK)
}

func (h *Handler) HandleLogActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.logactivity")
	defer span.End()

	var in ActivityInput
	if !decodeJSON(w, r, "log activity", &in) {
		return
	}

	res, err := h.service.LogActivity(ctx, mux.Vars(r)["userId"], in)
	if err != nil {
		writeError(w, "log activity", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleSetCycleReference(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.setcycle")
	defer span.End()

	var in CycleInput
	if !decodeJSON(w, r, "set cycle reference", &in) {
		return
	}

	phaseInfo, err := h.service.SetCycleReference(ctx, mux.Vars(r)["userId"], in)
	if err != nil {
		writeError(w, "set cycle reference", err)
		return
	}
	pkg.WriteJSON(w, phaseInfo, http.StatusOK)
}

func (h *Handler) HandleCurrentPhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.phase")
	defer span.End()

	phaseInfo, err := h.service.CurrentPhase(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "current phase", err)
		return
	}
	pkg.WriteJSON(w, phaseInfo, http.StatusOK)
}

func (h *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.calendar")
	defer span.End()

	annotations, err := h.service.CalendarAnnotations(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "calendar annotations", err)
		return
	}
	pkg.WriteJSON(w, annotations, http.StatusOK)
}

func (h *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.progression")
	defer span.End()

	progress, err := h.service.ProgressionSummary(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "progression summary", err)
		return
	}
	pkg.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.achievements")
	defer span.End()

	unlocked, err := h.service.Achievements(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "achievements", err)
		return
	}
	pkg.WriteJSON(w, unlocked, http.StatusOK)
}

func (h *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.addgoal")
	defer span.End()

	var params progression.NewGoalParams
	if !decodeJSON(w, r, "add goal", &params) {
		return
	}

	goal, err := h.service.AddGoal(ctx, mux.Vars(r)["userId"], params)
	if err != nil {
		writeError(w, "add goal", err)
		return
	}
	pkg.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.deletegoal")
	defer span.End()

	vars := mux.Vars(r)
	if err := h.service.DeleteGoal(ctx, vars["userId"], vars["goalId"]); err != nil {
		writeError(w, "delete goal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCompleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.completegoal")
	defer span.End()

	vars := mux.Vars(r)
	res, err := h.service.CompleteGoal(ctx, vars["userId"], vars["goalId"])
	if err != nil {
		writeError(w, "complete goal", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleProgressGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.progressgoal")
	defer span.End()

	var in GoalProgressInput
	if !decodeJSON(w, r, "progress goal", &in) {
		return
	}

	vars := mux.Vars(r)
	res, err := h.service.ProgressGoal(ctx, vars["userId"], vars["goalId"], in)
	if err != nil {
		writeError(w, "progress goal", err)
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleProgressStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.stats")
	defer span.End()

	stats, err := h.service.ProgressStats(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "progress stats", err)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}

// HandleListWorkouts lists the workout log, optionally for one day given as ?date=YYYY-MM-DD.
func (h *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.listworkouts")
	defer span.End()

	workouts, err := h.service.ListWorkouts(ctx, mux.Vars(r)["userId"], r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, "list workouts", err)
		return
	}
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (h *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.deleteworkout")
	defer span.End()

	vars := mux.Vars(r)
	if err := h.service.DeleteWorkout(ctx, vars["userId"], vars["activityId"]); err != nil {
		writeError(w, "delete workout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.savetemplate")
	defer span.End()

	var in TemplateInput
	if !decodeJSON(w, r, "save template", &in) {
		return
	}

	template, err := h.service.SaveTemplate(ctx, mux.Vars(r)["userId"], in)
	if err != nil {
		writeError(w, "save template", err)
		return
	}
	pkg.WriteJSON(w, template, http.StatusCreated)
}

// HandleListTemplates filters by the current phase unless ?phaseFilter=false,
// ?difficulty= narrows the list further.
func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.listtemplates")
	defer span.End()

	query := r.URL.Query()
	filter := TemplateFilter{
		ByPhase:    true,
		Difficulty: wellness.Difficulty(query.Get("difficulty")),
	}
	if phaseFilter := query.Get("phaseFilter"); phaseFilter != "" {
		byPhase, err := strconv.ParseBool(phaseFilter)
		if err != nil {
			http.Error(w, "invalid phaseFilter param", http.StatusBadRequest)
			return
		}
		filter.ByPhase = byPhase
	}

	templates, err := h.service.ListTemplates(ctx, mux.Vars(r)["userId"], filter)
	if err != nil {
		writeError(w, "list templates", err)
		return
	}
	pkg.WriteJSON(w, templates, http.StatusOK)
}

// HandleAchievementCatalog lists every achievement that can be unlocked.
func (h *Handler) HandleAchievementCatalog(w http.ResponseWriter, r *http.Request) {
	pkg.WriteJSON(w, progression.Achievements(), http.StatusOK)
}

func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.leaderboard")
	defer span.End()

	entries, err := h.service.Leaderboard(ctx)
	if err != nil {
		writeError(w, "leaderboard", err)
		return
	}
	pkg.WriteJSON(w, entries, http.StatusOK)
}
