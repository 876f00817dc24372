package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/middleware"
	"examgen_client/models"
)

type StatisticsHandler struct {
	gw *gateway.Client
}

func NewStatisticsHandler(gw *gateway.Client) *StatisticsHandler {
	return &StatisticsHandler{gw: gw}
}

type statisticsData struct {
	Page
	Stats *models.Statistics
}

func (h *StatisticsHandler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	data := statisticsData{Page: pageFor(c, "Statystyki")}

	stats, err := h.gw.GetStatistics(c.Request.Context(), sess.Token)
	if err != nil {
		log.Printf("Statistics load failed: %v", err)
		data.Error = gateway.Message(err, "Nie udało się pobrać statystyk")
		c.HTML(http.StatusOK, "statistics.tmpl", data)
		return
	}
	data.Stats = &stats
	c.HTML(http.StatusOK, "statistics.tmpl", data)
}
