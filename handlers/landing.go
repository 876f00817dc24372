package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/listquery"
	"examgen_client/models"
)

const landingReviewCount = 6

type LandingHandler struct {
	gw *gateway.Client
}

func NewLandingHandler(gw *gateway.Client) *LandingHandler {
	return &LandingHandler{gw: gw}
}

type landingData struct {
	Page
	Reviews []models.Review
	Stats   *models.ReviewStats
}

// Show renders the public landing page. The newest reviews and the rating
// stats are fetched concurrently and only shown once both have settled; if
// either fails the pair is dropped and reported as one failure, while the
// hero content still renders.
func (h *LandingHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	q := listquery.DefaultQuery()
	q.PageSize = landingReviewCount

	var (
		wg         sync.WaitGroup
		reviewPage models.ReviewPage
		stats      models.ReviewStats
		reviewErr  error
		statsErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reviewPage, reviewErr = h.gw.ListReviews(ctx, "", q)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.gw.GetReviewStats(ctx, "")
	}()
	wg.Wait()

	data := landingData{Page: pageFor(c, "Start")}
	if reviewErr != nil || statsErr != nil {
		log.Printf("Landing data load failed: reviews=%v stats=%v", reviewErr, statsErr)
		data.Error = "Nie udało się pobrać opinii"
	} else {
		data.Reviews = reviewPage.Reviews
		data.Stats = &stats
	}
	c.HTML(http.StatusOK, "landing.tmpl", data)
}
