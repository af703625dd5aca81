package dto

// WeeklyScore is one point on the weekly trend chart
type WeeklyScore struct {
	Name     string `json:"name" example:"Week 3"`
	Score    int    `json:"score" example:"74"`
	Attempts int    `json:"attempts" example:"2"`
}

// CourseScore is a per-course aggregate of attempt scores
type CourseScore struct {
	Course   string `json:"course" example:"Data Structures"`
	Score    int    `json:"score" example:"85"`
	Attempts int    `json:"attempts" example:"4"`
}

// PerformanceResponse is the student performance summary payload
type PerformanceResponse struct {
	AverageScore      int           `json:"averageScore"`
	CompletionRate    int           `json:"completionRate"`
	StudyStreak       int           `json:"studyStreak"`
	TimeSpent         int           `json:"timeSpent"`
	WeeklyTrend       []WeeklyScore `json:"weeklyTrend"`
	CoursePerformance []CourseScore `json:"coursePerformance"`
	Strengths         []CourseScore `json:"strengths"`
	Weaknesses        []CourseScore `json:"weaknesses"`
}
