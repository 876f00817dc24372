package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/listquery"
	"examgen_client/middleware"
	"examgen_client/models"
	"examgen_client/session"
)

type ReviewsHandler struct {
	gw *gateway.Client
}

func NewReviewsHandler(gw *gateway.Client) *ReviewsHandler {
	return &ReviewsHandler{gw: gw}
}

func (h *ReviewsHandler) controller(sess *session.Session) *listquery.Controller[models.Review] {
	return sess.ReviewList(func(ctx context.Context, q listquery.Query) (listquery.Result[models.Review], error) {
		page, err := h.gw.ListReviews(ctx, sess.Token, q)
		if err != nil {
			return listquery.Result[models.Review]{}, err
		}
		return listquery.Result[models.Review]{
			Items:       page.Reviews,
			TotalCount:  page.TotalCount,
			CurrentPage: page.CurrentPage,
			PageSize:    page.PageSize,
			TotalPages:  page.TotalPages,
		}, nil
	})
}

type ratingRow struct {
	Rating int
	Count  int
}

type reviewsData struct {
	Page
	Result       listquery.Result[models.Review]
	Fetched      bool
	Stats        *models.ReviewStats
	Distribution []ratingRow
	MyReview     *models.Review
	Editing      bool
	Rating       int
	Comment      string
	Ratings      []int
	IsAdmin      bool
	PrevPage     int
	NextPage     int
}

// Show loads the review list, the aggregate stats and the caller's own
// review concurrently and renders once all three have settled. A failure of
// any of them is reported as one combined failure; whatever did load stays
// on screen.
func (h *ReviewsHandler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	ctrl := h.controller(sess)
	ctx := c.Request.Context()

	if params := c.Request.URL.Query(); params.Has("page") {
		if n, err := strconv.Atoi(params.Get("page")); err == nil {
			ctrl.SetPage(n)
		}
	}

	var (
		wg       sync.WaitGroup
		stats    models.ReviewStats
		myReview *models.Review
		listErr  error
		statsErr error
		mineErr  error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		listErr = ctrl.Refresh(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.gw.GetReviewStats(ctx, sess.Token)
	}()
	go func() {
		defer wg.Done()
		myReview, mineErr = h.gw.GetMyReview(ctx, sess.Token)
	}()
	wg.Wait()

	data := h.viewData(c, ctrl)
	data.Editing = c.Request.URL.Query().Has("edit")
	data.MyReview = myReview
	if myReview != nil {
		data.Rating = myReview.Rating
		data.Comment = myReview.Comment
	}
	if statsErr == nil {
		data.Stats = &stats
		data.Distribution = distributionRows(stats)
	}
	if listErr != nil || statsErr != nil || mineErr != nil {
		log.Printf("Reviews load failed: list=%v stats=%v mine=%v", listErr, statsErr, mineErr)
		data.Error = "Nie udało się pobrać recenzji"
	}
	c.HTML(http.StatusOK, "reviews.tmpl", data)
}

// Save creates or updates the caller's review. Validation runs here, before
// anything touches the network: a comment outside 10–500 characters never
// produces a backend call.
func (h *ReviewsHandler) Save(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	update := c.PostForm("mode") == "update"

	var req models.CreateReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		data := h.formOnlyData(c, update)
		data.Rating = req.Rating
		data.Comment = req.Comment
		data.Error = "Komentarz musi mieć od 10 do 500 znaków, ocena od 1 do 5."
		c.HTML(http.StatusBadRequest, "reviews.tmpl", data)
		return
	}

	var err error
	if update {
		_, err = h.gw.UpdateMyReview(c.Request.Context(), sess.Token, req)
	} else {
		_, err = h.gw.CreateReview(c.Request.Context(), sess.Token, req)
	}
	if err != nil {
		log.Printf("Review save failed: %v", err)
		data := h.formOnlyData(c, update)
		data.Rating = req.Rating
		data.Comment = req.Comment
		data.Error = gateway.Message(err, "Nie udało się zapisać recenzji")
		c.HTML(http.StatusBadGateway, "reviews.tmpl", data)
		return
	}

	// Back through Show, so the list and the stats reload with the change.
	c.Redirect(http.StatusFound, "/reviews")
}

func (h *ReviewsHandler) ConfirmDeleteMine(c *gin.Context) {
	c.HTML(http.StatusOK, "confirm.tmpl", confirmData{
		Page:      pageFor(c, "Usuń recenzję"),
		Prompt:    "Czy na pewno chcesz usunąć swoją recenzję?",
		Action:    "/reviews/delete",
		CancelURL: "/reviews",
	})
}

func (h *ReviewsHandler) DeleteMine(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if err := h.gw.DeleteMyReview(c.Request.Context(), sess.Token); err != nil {
		log.Printf("Review delete failed: %v", err)
		data := h.formOnlyData(c, false)
		data.Error = gateway.Message(err, "Nie udało się usunąć recenzji")
		c.HTML(http.StatusBadGateway, "reviews.tmpl", data)
		return
	}
	c.Redirect(http.StatusFound, "/reviews")
}

// ConfirmDelete is the admin-only path for removing any user's review.
func (h *ReviewsHandler) ConfirmDelete(c *gin.Context) {
	if !middleware.CurrentSession(c).User.IsAdmin() {
		c.Redirect(http.StatusFound, "/reviews")
		return
	}
	id := c.Param("id")
	c.HTML(http.StatusOK, "confirm.tmpl", confirmData{
		Page:      pageFor(c, "Usuń recenzję"),
		Prompt:    "Czy na pewno chcesz usunąć tę recenzję?",
		Action:    fmt.Sprintf("/reviews/%s/delete", id),
		CancelURL: "/reviews",
	})
}

func (h *ReviewsHandler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !sess.User.IsAdmin() {
		c.Redirect(http.StatusFound, "/reviews")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/reviews")
		return
	}
	if err := h.gw.DeleteReview(c.Request.Context(), sess.Token, id); err != nil {
		log.Printf("Admin review delete failed: %v", err)
		data := h.formOnlyData(c, false)
		data.Error = gateway.Message(err, "Nie udało się usunąć recenzji")
		c.HTML(http.StatusBadGateway, "reviews.tmpl", data)
		return
	}
	c.Redirect(http.StatusFound, "/reviews")
}

func (h *ReviewsHandler) viewData(c *gin.Context, ctrl *listquery.Controller[models.Review]) reviewsData {
	sess := middleware.CurrentSession(c)
	result, fetched := ctrl.Result()
	return reviewsData{
		Page:     pageFor(c, "Recenzje"),
		Result:   result,
		Fetched:  fetched,
		Rating:   5,
		Ratings:  []int{1, 2, 3, 4, 5},
		IsAdmin:  sess.User.IsAdmin(),
		PrevPage: result.CurrentPage - 1,
		NextPage: result.CurrentPage + 1,
	}
}

// formOnlyData is the render state for failed form submissions: the form with
// its error, no fresh fetches.
func (h *ReviewsHandler) formOnlyData(c *gin.Context, editing bool) reviewsData {
	sess := middleware.CurrentSession(c)
	data := h.viewData(c, h.controller(sess))
	data.Editing = editing
	if editing {
		// Keep the form in update mode without refetching the review.
		data.MyReview = &models.Review{}
	}
	return data
}

func distributionRows(stats models.ReviewStats) []ratingRow {
	rows := make([]ratingRow, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		rows = append(rows, ratingRow{Rating: rating, Count: stats.RatingDistribution[rating]})
	}
	return rows
}
