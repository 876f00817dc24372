package models

type Review struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateReviewRequest doubles as the update payload; the backend keys
// updates on the authenticated user, at most one review per user.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" form:"comment" binding:"required,min=10,max=500"`
}

type ReviewPage struct {
	Reviews     []Review
	TotalCount  int
	CurrentPage int
	PageSize    int
	TotalPages  int
}

type ReviewStats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}
