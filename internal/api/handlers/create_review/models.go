package create_review

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment"`
}
