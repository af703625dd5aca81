package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/helpers"
)

const (
	// minutes charged per attempt when estimating study time
	minutesPerAttempt = 15

	strengthThreshold = 80.0
	weaknessThreshold = 75.0

	minTrendWeeks = 4
	maxTrendWeeks = 8
)

// AttemptStore lists a student's quiz attempts in submission order
type AttemptStore interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.QuizAttempt, error)
}

// QuizLookup resolves quizzes in batch
type QuizLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Quiz, error)
}

// CourseLookup resolves courses in batch
type CourseLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Course, error)
}

// PerformanceService defines the interface for student performance aggregation
type PerformanceService interface {
	GetStudentPerformance(ctx context.Context, studentID int64) (*dto.PerformanceResponse, error)
}

type performanceServiceImpl struct {
	attempts AttemptStore
	quizzes  QuizLookup
	courses  CourseLookup
	now      func() time.Time
}

// NewPerformanceService creates a new PerformanceService
func NewPerformanceService(attempts AttemptStore, quizzes QuizLookup, courses CourseLookup) PerformanceService {
	return &performanceServiceImpl{
		attempts: attempts,
		quizzes:  quizzes,
		courses:  courses,
		now:      time.Now,
	}
}

// GetStudentPerformance aggregates all of a student's quiz attempts into a
// single dashboard payload. A student with no attempts gets a zeroed
// response, never an error.
func (s *performanceServiceImpl) GetStudentPerformance(ctx context.Context, studentID int64) (*dto.PerformanceResponse, error) {
	attempts, err := s.attempts.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing attempts: %w", err)
	}

	if len(attempts) == 0 {
		return emptyPerformance(s.now()), nil
	}

	quizIDs := make([]int64, 0, len(attempts))
	seen := make(map[int64]bool, len(attempts))
	for _, a := range attempts {
		if !seen[a.QuizID] {
			seen[a.QuizID] = true
			quizIDs = append(quizIDs, a.QuizID)
		}
	}

	quizzes, err := s.quizzes.GetByIDs(ctx, quizIDs)
	if err != nil {
		return nil, fmt.Errorf("error resolving quizzes: %w", err)
	}

	courseIDs := make([]int64, 0, len(quizzes))
	seenCourse := make(map[int64]bool, len(quizzes))
	for _, q := range quizzes {
		if q.CourseID != nil && !seenCourse[*q.CourseID] {
			seenCourse[*q.CourseID] = true
			courseIDs = append(courseIDs, *q.CourseID)
		}
	}

	courses := map[int64]models.Course{}
	if len(courseIDs) > 0 {
		courses, err = s.courses.GetByIDs(ctx, courseIDs)
		if err != nil {
			return nil, fmt.Errorf("error resolving courses: %w", err)
		}
	}

	return computePerformance(attempts, quizzes, courses, s.now()), nil
}

// emptyPerformance is the zero-attempt payload. The trend still carries the
// most recent weeks at zero so the chart never renders empty.
func emptyPerformance(now time.Time) *dto.PerformanceResponse {
	return &dto.PerformanceResponse{
		WeeklyTrend:       weeklyTrend(nil, now),
		CoursePerformance: []dto.CourseScore{},
		Strengths:         []dto.CourseScore{},
		Weaknesses:        []dto.CourseScore{},
	}
}

// computePerformance is the whole aggregation in one pass-friendly shape so
// it can be exercised without a database. Attempts are expected in
// completed_at ascending order.
func computePerformance(attempts []models.QuizAttempt, quizzes map[int64]models.Quiz, courses map[int64]models.Course, now time.Time) *dto.PerformanceResponse {
	resp := emptyPerformance(now)

	var scoreSum float64
	var passedCount int
	for _, a := range attempts {
		scoreSum += a.ScorePercent()
		if a.Passed {
			passedCount++
		}
	}

	resp.AverageScore = int(math.Round(scoreSum / float64(len(attempts))))
	resp.CompletionRate = int(math.Round(float64(passedCount) / float64(len(attempts)) * 100))
	// fixed per-attempt estimate, in whole hours
	resp.TimeSpent = int(math.Round(float64(len(attempts)*minutesPerAttempt) / 60))
	resp.StudyStreak = countStudyDays(attempts)
	resp.WeeklyTrend = weeklyTrend(attempts, now)

	byCourse := courseBuckets(attempts, quizzes, courses)
	resp.CoursePerformance = byCourse
	resp.Strengths = pickStrengths(byCourse)
	resp.Weaknesses = pickWeaknesses(byCourse)

	return resp
}

// pickStrengths takes the top courses scoring at or above the strength
// threshold, at most three
func pickStrengths(sorted []dto.CourseScore) []dto.CourseScore {
	strengths := []dto.CourseScore{}
	for _, c := range sorted {
		if float64(c.Score) >= strengthThreshold && len(strengths) < 3 {
			strengths = append(strengths, c)
		}
	}
	return strengths
}

// pickWeaknesses takes the bottom courses scoring below the weakness
// threshold, at most three. Courses between the two thresholds land in
// neither bucket.
func pickWeaknesses(sorted []dto.CourseScore) []dto.CourseScore {
	weaknesses := []dto.CourseScore{}
	for i := len(sorted) - 1; i >= 0 && len(weaknesses) < 3; i-- {
		if float64(sorted[i].Score) < weaknessThreshold {
			weaknesses = append(weaknesses, sorted[i])
		}
	}
	return weaknesses
}

// countStudyDays counts distinct calendar days with at least one attempt
func countStudyDays(attempts []models.QuizAttempt) int {
	days := make(map[string]bool)
	for _, a := range attempts {
		days[helpers.LocalDateKey(a.CompletedAt)] = true
	}
	return len(days)
}

// weeklyTrend buckets attempts into Sunday-anchored weeks ending at the
// current week. The window covers at most the last eight weeks; leading
// weeks with no attempts are trimmed while keeping at least four buckets.
func weeklyTrend(attempts []models.QuizAttempt, now time.Time) []dto.WeeklyScore {
	currentWeek := helpers.StartOfWeek(now)
	windowStart := currentWeek.AddDate(0, 0, -7*(maxTrendWeeks-1))

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make([]bucket, maxTrendWeeks)
	for _, a := range attempts {
		week := helpers.StartOfWeek(a.CompletedAt)
		if week.Before(windowStart) || week.After(currentWeek) {
			continue
		}
		idx := int(week.Sub(windowStart).Hours() / (24 * 7))
		buckets[idx].sum += a.ScorePercent()
		buckets[idx].count++
	}

	first := 0
	for first < maxTrendWeeks-minTrendWeeks && buckets[first].count == 0 {
		first++
	}

	trend := make([]dto.WeeklyScore, 0, maxTrendWeeks-first)
	for i := first; i < maxTrendWeeks; i++ {
		score := 0
		if buckets[i].count > 0 {
			score = int(math.Round(buckets[i].sum / float64(buckets[i].count)))
		}
		trend = append(trend, dto.WeeklyScore{
			Name:     fmt.Sprintf("Week %d", i-first+1),
			Score:    score,
			Attempts: buckets[i].count,
		})
	}
	return trend
}

// courseBuckets averages attempt scores per course, sorted by mean score
// descending. Attempts on quizzes without a course are grouped under
// "General".
func courseBuckets(attempts []models.QuizAttempt, quizzes map[int64]models.Quiz, courses map[int64]models.Course) []dto.CourseScore {
	type bucket struct {
		sum   float64
		count int
	}
	byName := make(map[string]*bucket)
	for _, a := range attempts {
		name := "General"
		if quiz, ok := quizzes[a.QuizID]; ok && quiz.CourseID != nil {
			if course, ok := courses[*quiz.CourseID]; ok {
				name = course.Title
			}
		}
		b, ok := byName[name]
		if !ok {
			b = &bucket{}
			byName[name] = b
		}
		b.sum += a.ScorePercent()
		b.count++
	}

	result := make([]dto.CourseScore, 0, len(byName))
	for name, b := range byName {
		result = append(result, dto.CourseScore{
			Course:   name,
			Score:    int(math.Round(b.sum / float64(b.count))),
			Attempts: b.count,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Course < result[j].Course
	})
	return result
}
