package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/profile"
	"github.com/2beens/fitquest/internal/progression"
	"github.com/2beens/fitquest/internal/wellness"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) createProfile(ctx context.Context) string {
	userID := gofakeit.UUID()
	status, body := s.doRequest(ctx, "POST", "/users/"+userID+"/profile", nil)
	require.Equal(s.T(), http.StatusCreated, status, string(body))
	return userID
}

func (s *IntegrationTestSuite) logActivity(ctx context.Context, userID string, in profile.ActivityInput) profile.LogActivityResult {
	status, body := s.doRequest(ctx, "POST", "/users/"+userID+"/activities", in)
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	var res profile.LogActivityResult
	require.NoError(s.T(), json.Unmarshal(body, &res))
	return res
}

func (s *IntegrationTestSuite) TestProfile_CreateTwice() {
	ctx := context.Background()
	userID := s.createProfile(ctx)

	status, _ := s.doRequest(ctx, "POST", "/users/"+userID+"/profile", nil)
	s.Equal(http.StatusConflict, status)

	status, _ = s.doRequest(ctx, "GET", "/users/"+gofakeit.UUID()+"/profile", nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestProfile_Unauthorized() {
	ctx := context.Background()
	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/users/u-1/profile", nil)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestProfile_LogActivityAndProgression() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	res := s.logActivity(ctx, userID, profile.ActivityInput{
		Name:      "Morning run",
		Category:  "cardio",
		Magnitude: 250,
	})
	assert.Equal(t, 100, res.Progress.XP)
	assert.Equal(t, 1, res.Progress.Level)
	assert.Equal(t, 1, res.Streak.Current)
	assert.Equal(t, 1, res.Streak.Best)
	assert.False(t, res.LevelUp)

	// second one on the same day keeps the streak
	res = s.logActivity(ctx, userID, profile.ActivityInput{Category: "anaerobic", Magnitude: 120})
	assert.Equal(t, 1, res.Streak.Current)
	assert.True(t, res.LevelUp)

	status, body := s.doRequest(ctx, "GET", "/users/"+userID+"/progression", nil)
	require.Equal(t, http.StatusOK, status)
	var progress progression.Progress
	require.NoError(t, json.Unmarshal(body, &progress))
	assert.Equal(t, progression.ProgressWithinLevel(200), progress)

	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/profile", nil)
	require.Equal(t, http.StatusOK, status)
	var p profile.Profile
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, 200, p.XP)
	assert.Equal(t, 2, p.Level)
	require.Len(t, p.Workouts, 2)
	assert.Equal(t, "Morning run", p.Workouts[0].Name)

	status, _ = s.doRequest(ctx, "POST", "/users/"+userID+"/activities", profile.ActivityInput{Category: "cardio", Magnitude: -1})
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestProfile_CycleAndCalendar() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	status, _ := s.doRequest(ctx, "GET", "/users/"+userID+"/phase", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.doRequest(ctx, "PUT", "/users/"+userID+"/cycle", profile.CycleInput{
		CycleEndDate: "2024-01-01",
		CycleLength:  9,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := s.doRequest(ctx, "PUT", "/users/"+userID+"/cycle", profile.CycleInput{
		CycleEndDate: "2024-01-01",
		CycleLength:  28,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var phaseInfo profile.PhaseInfo
	require.NoError(t, json.Unmarshal(body, &phaseInfo))
	assert.True(t, phaseInfo.Phase.IsValid())
	assert.GreaterOrEqual(t, phaseInfo.DayInCycle, 0)
	assert.Less(t, phaseInfo.DayInCycle, 28)
	assert.NotEmpty(t, phaseInfo.RecommendedDifficulties)

	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/phase", nil)
	require.Equal(t, http.StatusOK, status)
	var current profile.PhaseInfo
	require.NoError(t, json.Unmarshal(body, &current))
	assert.Equal(t, phaseInfo, current)

	status, first := s.doRequest(ctx, "GET", "/users/"+userID+"/calendar", nil)
	require.Equal(t, http.StatusOK, status)
	_, second := s.doRequest(ctx, "GET", "/users/"+userID+"/calendar", nil)
	assert.Equal(t, first, second)

	var annotations wellness.Annotations
	require.NoError(t, json.Unmarshal(first, &annotations))
	assert.Len(t, annotations, 25)
	assert.Equal(t, wellness.AnnotationReference, annotations["2024-01-01"])
	assert.Equal(t, wellness.AnnotationOvulation, annotations["2024-01-15"])
	assert.Equal(t, wellness.AnnotationPeriod, annotations["2024-01-29"])
	assert.Equal(t, wellness.AnnotationPeriod, annotations["2024-04-26"])
}

func (s *IntegrationTestSuite) TestProfile_Goals() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	status, body := s.doRequest(ctx, "POST", "/users/"+userID+"/goals", progression.NewGoalParams{
		Title:        "Burn 300",
		Kind:         progression.GoalKindCalories,
		Category:     "cardio",
		Unit:         "kcal",
		TargetValue:  300,
		DurationDays: 7,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var burnGoal progression.Goal
	require.NoError(t, json.Unmarshal(body, &burnGoal))

	status, body = s.doRequest(ctx, "POST", "/users/"+userID+"/goals", progression.NewGoalParams{
		Title:        "Run 3 times",
		Kind:         progression.GoalKindFrequency,
		Category:     "cardio",
		TargetValue:  3,
		DurationDays: 7,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var freqGoal progression.Goal
	require.NoError(t, json.Unmarshal(body, &freqGoal))

	res := s.logActivity(ctx, userID, profile.ActivityInput{Category: "cardio", Magnitude: 200})
	assert.Empty(t, res.CompletedGoals)
	res = s.logActivity(ctx, userID, profile.ActivityInput{Category: "cardio", Magnitude: 200})
	assert.Equal(t, []string{burnGoal.ID}, res.CompletedGoals)

	// only calorie goals are consumed by activities
	status, body = s.doRequest(ctx, "POST", "/users/"+userID+"/goals/"+freqGoal.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	var completeRes profile.CompleteGoalResult
	require.NoError(t, json.Unmarshal(body, &completeRes))
	assert.True(t, completeRes.Awarded)
	assert.Equal(t, 3.0, completeRes.Goal.TargetValue)
	assert.Equal(t, 200+progression.GoalCompletionXP, completeRes.Progress.XP)

	status, body = s.doRequest(ctx, "POST", "/users/"+userID+"/goals/"+freqGoal.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &completeRes))
	assert.False(t, completeRes.Awarded)
	assert.Equal(t, 200+progression.GoalCompletionXP, completeRes.Progress.XP)

	status, _ = s.doRequest(ctx, "DELETE", "/users/"+userID+"/goals/"+burnGoal.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = s.doRequest(ctx, "DELETE", "/users/"+userID+"/goals/"+burnGoal.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/achievements", nil)
	require.Equal(t, http.StatusOK, status)
	var achievements []progression.Achievement
	require.NoError(t, json.Unmarshal(body, &achievements))
	assert.Empty(t, achievements)
}

func (s *IntegrationTestSuite) TestProfile_ConcurrentActivities() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	const activities = 12
	var wg sync.WaitGroup
	for i := 0; i < activities; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.logActivity(ctx, userID, profile.ActivityInput{Category: "cardio", Magnitude: 10})
		}()
	}
	wg.Wait()

	// every read-modify-write ran against the locked row, none got lost
	p, err := profile.NewRepo(s.dbPool).Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, activities*progression.WorkoutXP, p.XP)
	assert.Len(t, p.Workouts, activities)
	assert.Equal(t, 1, p.Current)
}

func (s *IntegrationTestSuite) TestProfile_Leaderboard() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)
	for i := 0; i < 30; i++ {
		s.logActivity(ctx, userID, profile.ActivityInput{Category: "cardio", Magnitude: 1})
	}

	// leaderboard is public
	resp, err := s.httpClient.Get(serverEndpoint + "/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []profile.LeaderboardEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, userID, entries[0].UserID)
	assert.Equal(t, 3000, entries[0].XP)
	assert.Equal(t, progression.LevelFromXP(3000), entries[0].Level)
}

func (s *IntegrationTestSuite) TestRepo_Update() {
	ctx := context.Background()
	t := s.T()
	repo := profile.NewRepo(s.dbPool)

	userID := gofakeit.UUID()
	require.NoError(t, repo.Create(ctx, profile.NewProfile(userID, time.Now())))
	err := repo.Create(ctx, profile.NewProfile(userID, time.Now()))
	assert.ErrorIs(t, err, profile.ErrProfileExists)

	_, err = repo.Update(ctx, gofakeit.UUID(), func(*profile.Profile) error { return nil })
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)

	// a failing mutation writes nothing
	errBoom := errors.New("boom")
	_, err = repo.Update(ctx, userID, func(p *profile.Profile) error {
		p.XP = 5000
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	p, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.XP)

	updated, err := repo.Update(ctx, userID, func(p *profile.Profile) error {
		p.XP = 700
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 700, updated.XP)

	userIDs, err := repo.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, userIDs, userID)

	top, err := repo.TopByXP(ctx, 1000)
	require.NoError(t, err)
	found := false
	for _, e := range top {
		if e.UserID == userID {
			found = true
			assert.Equal(t, 700, e.XP)
		}
	}
	assert.True(t, found)
}

func (s *IntegrationTestSuite) TestProfile_WorkoutsAndStats() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	first := s.logActivity(ctx, userID, profile.ActivityInput{Name: "Long ride", Category: "cardio", Magnitude: 1400, Date: "2024-03-01"})
	s.logActivity(ctx, userID, profile.ActivityInput{Name: "Squats", Category: "anaerobic", Magnitude: 150, Date: "2024-03-01"})
	s.logActivity(ctx, userID, profile.ActivityInput{Name: "Swim", Category: "cardio", Magnitude: 300})

	status, body := s.doRequest(ctx, "GET", "/users/"+userID+"/activities?date=2024-03-01", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var onDay []profile.ActivityEntry
	require.NoError(t, json.Unmarshal(body, &onDay))
	require.Len(t, onDay, 2)
	assert.Equal(t, "Long ride", onDay[0].Name)

	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/stats", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var stats profile.ProgressStats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 1850.0, stats.TotalCalories)
	require.Len(t, stats.CaloriesPerDay, 2)
	assert.Equal(t, profile.DayCalories{Date: "2024-03-01", Calories: 1150}, stats.CaloriesPerDay[0])

	status, _ = s.doRequest(ctx, "DELETE", "/users/"+userID+"/activities/"+first.Activity.ID, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = s.doRequest(ctx, "DELETE", "/users/"+userID+"/activities/"+first.Activity.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/activities", nil)
	require.Equal(t, http.StatusOK, status)
	var all []profile.ActivityEntry
	require.NoError(t, json.Unmarshal(body, &all))
	assert.Len(t, all, 2)

	// xp earned by the deleted workout is kept
	status, body = s.doRequest(ctx, "GET", "/users/"+userID+"/progression", nil)
	require.Equal(t, http.StatusOK, status)
	var progress progression.Progress
	require.NoError(t, json.Unmarshal(body, &progress))
	assert.Equal(t, 300, progress.XP)
}

func (s *IntegrationTestSuite) TestProfile_Templates() {
	ctx := context.Background()
	t := s.T()
	userID := s.createProfile(ctx)

	for _, in := range []profile.TemplateInput{
		{Name: "Gentle yoga", Category: "flexibility", Calories: 120, Difficulty: wellness.DifficultyBeginner},
		{Name: "Tempo run", Category: "cardio", Calories: 400, Difficulty: wellness.DifficultyIntermediate},
		{Name: "Hill sprints", Category: "cardio", Calories: 500, Difficulty: wellness.DifficultyAdvanced},
	} {
		status, body := s.doRequest(ctx, "POST", "/users/"+userID+"/templates", in)
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	listTemplates := func(query string) profile.TemplateList {
		status, body := s.doRequest(ctx, "GET", "/users/"+userID+"/templates"+query, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		var list profile.TemplateList
		require.NoError(t, json.Unmarshal(body, &list))
		return list
	}

	// no cycle reference yet, nothing to filter by
	list := listTemplates("")
	assert.Empty(t, list.Phase)
	assert.Len(t, list.Templates, 3)

	// a cycle ending today puts today on day 0, recovery
	cal, err := datemath.NewCalendarForTimezone("Europe/London")
	require.NoError(t, err)
	status, body := s.doRequest(ctx, "PUT", "/users/"+userID+"/cycle", profile.CycleInput{
		CycleEndDate: cal.DateKey(time.Now()),
		CycleLength:  28,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	list = listTemplates("")
	assert.Equal(t, wellness.PhaseRecovery, list.Phase)
	require.Len(t, list.Templates, 1)
	assert.Equal(t, "Gentle yoga", list.Templates[0].Name)

	list = listTemplates("?phaseFilter=false&difficulty=Advanced")
	require.Len(t, list.Templates, 1)
	assert.Equal(t, "Hill sprints", list.Templates[0].Name)

	status, _ = s.doRequest(ctx, "POST", "/users/"+userID+"/templates", profile.TemplateInput{Name: "x", Category: "cardio", Difficulty: "Expert"})
	assert.Equal(t, http.StatusBadRequest, status)
}
