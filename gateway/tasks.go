package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"examgen_client/listquery"
	"examgen_client/models"
)

func (c *Client) GenerateTasks(ctx context.Context, token string, req models.TaskGenerationRequest, includeSolutions bool) (models.TaskGenerationResponse, error) {
	params := url.Values{}
	params.Set("includeSolutions", strconv.FormatBool(includeSolutions))
	var resp models.TaskGenerationResponse
	err := c.do(ctx, "generate tasks", http.MethodPost, "/Physics/generate-tasks", token, params, req, &resp)
	return resp, err
}

func (c *Client) GetStatistics(ctx context.Context, token string) (models.Statistics, error) {
	var stats models.Statistics
	err := c.do(ctx, "get statistics", http.MethodGet, "/Physics/statistics", token, nil, nil, &stats)
	return stats, err
}

// taskPagePayload covers both shapes the list endpoint has been seen
// returning: tasks/page in older revisions, items/currentPage in newer ones.
// Pointers distinguish an absent field from an empty one.
type taskPagePayload struct {
	Tasks       *[]models.GeneratedTask `json:"tasks"`
	Items       *[]models.GeneratedTask `json:"items"`
	TotalCount  *int                    `json:"totalCount"`
	Page        int                     `json:"page"`
	CurrentPage int                     `json:"currentPage"`
	PageSize    int                     `json:"pageSize"`
	TotalPages  int                     `json:"totalPages"`
}

// ListGeneratedTasks queries the user's generation history and normalizes
// the response into the canonical TaskPage. A body matching neither known
// shape is a decode error, never a silently empty page.
func (c *Client) ListGeneratedTasks(ctx context.Context, token string, q listquery.Query) (models.TaskPage, error) {
	const op = "list generated tasks"
	data, err := c.doRaw(ctx, op, http.MethodGet, "/generated-tasks", token, listParams(q), nil)
	if err != nil {
		return models.TaskPage{}, err
	}

	var payload taskPagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.TaskPage{}, &Error{Kind: ErrorKindDecode, Op: op, Err: err}
	}
	if payload.Tasks == nil && payload.Items == nil {
		return models.TaskPage{}, &Error{
			Kind: ErrorKindDecode,
			Op:   op,
			Err:  fmt.Errorf("response carries neither %q nor %q", "tasks", "items"),
		}
	}

	page := models.TaskPage{
		PageSize:    payload.PageSize,
		TotalPages:  payload.TotalPages,
		CurrentPage: payload.CurrentPage,
	}
	if payload.Tasks != nil {
		page.Tasks = *payload.Tasks
	} else {
		page.Tasks = *payload.Items
	}
	if payload.TotalCount != nil {
		page.TotalCount = *payload.TotalCount
	}
	if page.CurrentPage == 0 {
		page.CurrentPage = payload.Page
	}
	return page, nil
}

func (c *Client) DeleteGeneratedTask(ctx context.Context, token string, id int) error {
	return c.do(ctx, "delete generated task", http.MethodDelete, fmt.Sprintf("/generated-tasks/%d", id), token, nil, nil, nil)
}

func (c *Client) DeleteGeneratedTasksBulk(ctx context.Context, token string, ids []int) error {
	return c.do(ctx, "bulk delete generated tasks", http.MethodDelete, "/generated-tasks/bulk", token, nil, ids, nil)
}

// ExportTaskPDF downloads the rendered PDF for one history entry. The body
// is opaque to the client and handed straight to the browser.
func (c *Client) ExportTaskPDF(ctx context.Context, token string, id int, includeSolutions bool) ([]byte, error) {
	params := url.Values{}
	params.Set("includeSolutions", strconv.FormatBool(includeSolutions))
	return c.doRaw(ctx, "export task pdf", http.MethodGet, fmt.Sprintf("/generated-tasks/%d/export-pdf", id), token, params, nil)
}

func (c *Client) GetPDFLimitStatus(ctx context.Context, token string) (models.PDFLimitStatus, error) {
	var status models.PDFLimitStatus
	err := c.do(ctx, "get pdf limit status", http.MethodGet, "/generated-tasks/pdf-limit-status", token, nil, nil, &status)
	return status, err
}
