package dto

// RateMaterialRequest upserts a user's rating of a material
type RateMaterialRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// CreateReviewRequest creates or replaces a user's review of a material
type CreateReviewRequest struct {
	Body string `json:"body" binding:"required,min=3"`
}

// CreateReportRequest files a moderation report against a material
type CreateReportRequest struct {
	Reason string `json:"reason" binding:"required,min=5"`
}

// ResolveReportRequest closes out a moderation report
type ResolveReportRequest struct {
	Status string `json:"status" binding:"required,oneof=resolved dismissed"`
}
