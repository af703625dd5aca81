package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobi/edushare/internal/app/models"
)

type fakeAttemptStore struct {
	attempts []models.QuizAttempt
	err      error
}

func (f *fakeAttemptStore) ListByStudent(_ context.Context, _ int64) ([]models.QuizAttempt, error) {
	return f.attempts, f.err
}

type fakeQuizLookup struct {
	quizzes map[int64]models.Quiz
}

func (f *fakeQuizLookup) GetByIDs(_ context.Context, _ []int64) (map[int64]models.Quiz, error) {
	return f.quizzes, nil
}

type fakeCourseLookup struct {
	courses map[int64]models.Course
}

func (f *fakeCourseLookup) GetByIDs(_ context.Context, _ []int64) (map[int64]models.Course, error) {
	return f.courses, nil
}

func courseID(id int64) *int64 { return &id }

func newTestPerformanceService(attempts []models.QuizAttempt, quizzes map[int64]models.Quiz, courses map[int64]models.Course, now time.Time) *performanceServiceImpl {
	return &performanceServiceImpl{
		attempts: &fakeAttemptStore{attempts: attempts},
		quizzes:  &fakeQuizLookup{quizzes: quizzes},
		courses:  &fakeCourseLookup{courses: courses},
		now:      func() time.Time { return now },
	}
}

func TestGetStudentPerformance_AveragesAndBuckets(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) // a Wednesday

	quizzes := map[int64]models.Quiz{
		1: {ID: 1, CourseID: courseID(10)},
		2: {ID: 2, CourseID: courseID(10)},
		3: {ID: 3, CourseID: courseID(20)},
	}
	courses := map[int64]models.Course{
		10: {ID: 10, Code: "MTH101", Title: "Calculus I"},
		20: {ID: 20, Code: "CSC105", Title: "Intro to Programming"},
	}
	attempts := []models.QuizAttempt{
		{QuizID: 1, Score: 6, TotalQuestions: 10, Passed: false, CompletedAt: now.AddDate(0, 0, -3)},
		{QuizID: 2, Score: 8, TotalQuestions: 10, Passed: true, CompletedAt: now.AddDate(0, 0, -2)},
		{QuizID: 3, Score: 9, TotalQuestions: 10, Passed: true, CompletedAt: now.AddDate(0, 0, -1)},
	}

	svc := newTestPerformanceService(attempts, quizzes, courses, now)
	perf, err := svc.GetStudentPerformance(context.Background(), 1)
	require.NoError(t, err)

	// (60 + 80 + 90) / 3 = 76.67, rounded
	assert.Equal(t, 77, perf.AverageScore)
	// 2 of 3 passed
	assert.Equal(t, 67, perf.CompletionRate)
	// 3 attempts on 3 distinct days
	assert.Equal(t, 3, perf.StudyStreak)
	// 3 * 15 minutes rounds to 1 hour
	assert.Equal(t, 1, perf.TimeSpent)

	require.Len(t, perf.CoursePerformance, 2)
	assert.Equal(t, "Intro to Programming", perf.CoursePerformance[0].Course)
	assert.Equal(t, 90, perf.CoursePerformance[0].Score)
	assert.Equal(t, "Calculus I", perf.CoursePerformance[1].Course)
	assert.Equal(t, 70, perf.CoursePerformance[1].Score)

	require.Len(t, perf.Strengths, 1)
	assert.Equal(t, "Intro to Programming", perf.Strengths[0].Course)

	require.Len(t, perf.Weaknesses, 1)
	assert.Equal(t, "Calculus I", perf.Weaknesses[0].Course)
}

func TestGetStudentPerformance_NoAttempts(t *testing.T) {
	svc := newTestPerformanceService(nil, nil, nil, time.Now())

	perf, err := svc.GetStudentPerformance(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, perf.AverageScore)
	assert.Equal(t, 0, perf.CompletionRate)
	assert.Equal(t, 0, perf.StudyStreak)
	assert.Equal(t, 0, perf.TimeSpent)
	assert.Empty(t, perf.CoursePerformance)
	assert.Empty(t, perf.Strengths)
	assert.Empty(t, perf.Weaknesses)

	// the chart never renders empty: the four most recent weeks are
	// emitted at zero
	require.Len(t, perf.WeeklyTrend, 4)
	for i, week := range perf.WeeklyTrend {
		assert.Equal(t, fmt.Sprintf("Week %d", i+1), week.Name)
		assert.Equal(t, 0, week.Score)
		assert.Equal(t, 0, week.Attempts)
	}
}

func TestGetStudentPerformance_TrendAlwaysFourToEightWeeks(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		attempts []models.QuizAttempt
	}{
		{"no attempts", nil},
		{"only current week", []models.QuizAttempt{
			{QuizID: 1, Score: 7, TotalQuestions: 10, CompletedAt: now},
		}},
		{"full window", []models.QuizAttempt{
			{QuizID: 1, Score: 7, TotalQuestions: 10, CompletedAt: now.AddDate(0, 0, -49)},
			{QuizID: 1, Score: 8, TotalQuestions: 10, CompletedAt: now},
		}},
	}

	quizzes := map[int64]models.Quiz{1: {ID: 1}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestPerformanceService(tc.attempts, quizzes, nil, now)
			perf, err := svc.GetStudentPerformance(context.Background(), 1)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(perf.WeeklyTrend), 4)
			assert.LessOrEqual(t, len(perf.WeeklyTrend), 8)
		})
	}
}

func TestGetStudentPerformance_MidScoreCourseInNeitherBucket(t *testing.T) {
	now := time.Now()
	quizzes := map[int64]models.Quiz{1: {ID: 1, CourseID: courseID(10)}}
	courses := map[int64]models.Course{10: {ID: 10, Title: "Linear Algebra"}}
	attempts := []models.QuizAttempt{
		{QuizID: 1, Score: 78, TotalQuestions: 100, Passed: true, CompletedAt: now},
	}

	svc := newTestPerformanceService(attempts, quizzes, courses, now)
	perf, err := svc.GetStudentPerformance(context.Background(), 1)
	require.NoError(t, err)

	// 78 sits between the weakness and strength thresholds
	require.Len(t, perf.CoursePerformance, 1)
	assert.Empty(t, perf.Strengths)
	assert.Empty(t, perf.Weaknesses)
}

func TestGetStudentPerformance_QuizWithoutCourse(t *testing.T) {
	now := time.Now()
	quizzes := map[int64]models.Quiz{1: {ID: 1}}
	attempts := []models.QuizAttempt{
		{QuizID: 1, Score: 5, TotalQuestions: 10, CompletedAt: now},
	}

	svc := newTestPerformanceService(attempts, quizzes, nil, now)
	perf, err := svc.GetStudentPerformance(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, perf.CoursePerformance, 1)
	assert.Equal(t, "General", perf.CoursePerformance[0].Course)
}

func TestWeeklyTrend_Window(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	attempts := []models.QuizAttempt{
		// 6 weeks back
		{QuizID: 1, Score: 6, TotalQuestions: 10, CompletedAt: now.AddDate(0, 0, -42)},
		// 1 week back
		{QuizID: 1, Score: 8, TotalQuestions: 10, CompletedAt: now.AddDate(0, 0, -7)},
		// current week, two attempts averaging 85
		{QuizID: 1, Score: 8, TotalQuestions: 10, CompletedAt: now.AddDate(0, 0, -1)},
		{QuizID: 1, Score: 9, TotalQuestions: 10, CompletedAt: now},
		// outside the 8-week window, ignored
		{QuizID: 1, Score: 1, TotalQuestions: 10, CompletedAt: now.AddDate(0, 0, -70)},
	}

	trend := weeklyTrend(attempts, now)

	// leading empty week trimmed, oldest populated week first
	require.Len(t, trend, 7)
	assert.Equal(t, "Week 1", trend[0].Name)
	assert.Equal(t, 60, trend[0].Score)
	assert.Equal(t, 1, trend[0].Attempts)

	assert.Equal(t, "Week 6", trend[5].Name)
	assert.Equal(t, 80, trend[5].Score)

	assert.Equal(t, "Week 7", trend[6].Name)
	assert.Equal(t, 85, trend[6].Score)
	assert.Equal(t, 2, trend[6].Attempts)

	// intermediate empty weeks are kept as zero points
	assert.Equal(t, 0, trend[2].Score)
	assert.Equal(t, 0, trend[2].Attempts)
}

func TestWeeklyTrend_MinimumFourWeeks(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	attempts := []models.QuizAttempt{
		{QuizID: 1, Score: 7, TotalQuestions: 10, CompletedAt: now},
	}

	trend := weeklyTrend(attempts, now)

	// only the current week has data but four buckets are still emitted
	require.Len(t, trend, 4)
	assert.Equal(t, "Week 1", trend[0].Name)
	assert.Equal(t, 0, trend[0].Score)
	assert.Equal(t, "Week 4", trend[3].Name)
	assert.Equal(t, 70, trend[3].Score)
}

func TestCountStudyDays_DistinctDays(t *testing.T) {
	day := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	attempts := []models.QuizAttempt{
		{CompletedAt: day},
		{CompletedAt: day.Add(5 * time.Hour)},
		{CompletedAt: day.AddDate(0, 0, 1)},
	}

	assert.Equal(t, 2, countStudyDays(attempts))
}
