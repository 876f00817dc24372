package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"examgen_client/listquery"
	"examgen_client/models"
)

// reviewPagePayload mirrors taskPagePayload: the reviews endpoint has served
// both a paged object and (in the earliest revision) a bare array.
type reviewPagePayload struct {
	Reviews     *[]models.Review `json:"reviews"`
	Items       *[]models.Review `json:"items"`
	TotalCount  *int             `json:"totalCount"`
	Page        int              `json:"page"`
	CurrentPage int              `json:"currentPage"`
	PageSize    int              `json:"pageSize"`
	TotalPages  int              `json:"totalPages"`
}

func (c *Client) ListReviews(ctx context.Context, token string, q listquery.Query) (models.ReviewPage, error) {
	const op = "list reviews"
	data, err := c.doRaw(ctx, op, http.MethodGet, "/Reviews", token, listParams(q), nil)
	if err != nil {
		return models.ReviewPage{}, err
	}

	// Bare-array revision: the whole result set, no paging metadata.
	var plain []models.Review
	if err := json.Unmarshal(data, &plain); err == nil {
		return models.ReviewPage{
			Reviews:     plain,
			TotalCount:  len(plain),
			CurrentPage: 1,
			PageSize:    len(plain),
			TotalPages:  1,
		}, nil
	}

	var payload reviewPagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.ReviewPage{}, &Error{Kind: ErrorKindDecode, Op: op, Err: err}
	}
	if payload.Reviews == nil && payload.Items == nil {
		return models.ReviewPage{}, &Error{
			Kind: ErrorKindDecode,
			Op:   op,
			Err:  fmt.Errorf("response carries neither %q nor %q", "reviews", "items"),
		}
	}

	page := models.ReviewPage{
		PageSize:    payload.PageSize,
		TotalPages:  payload.TotalPages,
		CurrentPage: payload.CurrentPage,
	}
	if payload.Reviews != nil {
		page.Reviews = *payload.Reviews
	} else {
		page.Reviews = *payload.Items
	}
	if payload.TotalCount != nil {
		page.TotalCount = *payload.TotalCount
	}
	if page.CurrentPage == 0 {
		page.CurrentPage = payload.Page
	}
	return page, nil
}

// GetMyReview returns the caller's review, or nil when they have not written
// one yet. The backend reports "no review" as a 404, which is an expected
// state here, not an error.
func (c *Client) GetMyReview(ctx context.Context, token string) (*models.Review, error) {
	var review models.Review
	err := c.do(ctx, "get my review", http.MethodGet, "/Reviews/my", token, nil, nil, &review)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) CreateReview(ctx context.Context, token string, req models.CreateReviewRequest) (models.Review, error) {
	var review models.Review
	err := c.do(ctx, "create review", http.MethodPost, "/Reviews", token, nil, req, &review)
	return review, err
}

func (c *Client) UpdateMyReview(ctx context.Context, token string, req models.CreateReviewRequest) (models.Review, error) {
	var review models.Review
	err := c.do(ctx, "update my review", http.MethodPut, "/Reviews/my", token, nil, req, &review)
	return review, err
}

func (c *Client) DeleteMyReview(ctx context.Context, token string) error {
	return c.do(ctx, "delete my review", http.MethodDelete, "/Reviews/my", token, nil, nil, nil)
}

// DeleteReview removes any user's review. The backend only allows it for
// admins; the client additionally hides the control from everyone else.
func (c *Client) DeleteReview(ctx context.Context, token string, id int) error {
	return c.do(ctx, "delete review", http.MethodDelete, fmt.Sprintf("/Reviews/%d", id), token, nil, nil, nil)
}

func (c *Client) GetReviewStats(ctx context.Context, token string) (models.ReviewStats, error) {
	var stats models.ReviewStats
	err := c.do(ctx, "get review stats", http.MethodGet, "/Reviews/stats", token, nil, nil, &stats)
	return stats, err
}
