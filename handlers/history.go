package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/listquery"
	"examgen_client/middleware"
	"examgen_client/models"
	"examgen_client/session"
	"examgen_client/tasktext"
)

var (
	historyLevels    = []string{"podstawowy", "rozszerzony"}
	historySubjects  = []string{"mechanika", "kinematyka", "dynamika", "termodynamika", "elektryczność", "grawitacja"}
	historyPageSizes = []int{5, 10, 20, 50}
)

type HistoryHandler struct {
	gw *gateway.Client
}

func NewHistoryHandler(gw *gateway.Client) *HistoryHandler {
	return &HistoryHandler{gw: gw}
}

// controller returns the session's history list controller, wiring it to the
// generated-tasks endpoint on first use.
func (h *HistoryHandler) controller(sess *session.Session) *listquery.Controller[models.GeneratedTask] {
	return sess.HistoryList(func(ctx context.Context, q listquery.Query) (listquery.Result[models.GeneratedTask], error) {
		page, err := h.gw.ListGeneratedTasks(ctx, sess.Token, q)
		if err != nil {
			return listquery.Result[models.GeneratedTask]{}, err
		}
		return listquery.Result[models.GeneratedTask]{
			Items:       page.Tasks,
			TotalCount:  page.TotalCount,
			CurrentPage: page.CurrentPage,
			PageSize:    page.PageSize,
			TotalPages:  page.TotalPages,
		}, nil
	})
}

// taskCard is one history entry prepared for display.
type taskCard struct {
	Task     models.GeneratedTask
	Parsed   []taskView
	Expanded bool
}

type historyData struct {
	Page
	Query      listquery.Query
	Result     listquery.Result[models.GeneratedTask]
	Fetched    bool
	Loading    bool
	Cards      []taskCard
	Levels     []string
	Subjects   []string
	PageSizes  []int
	Level      string
	Subject    string
	DateFilter string
	PrevPage   int
	NextPage   int
}

// Show applies whatever query changes the request carries and re-fetches.
// The filter form always submits the full field set; the controller's
// mutators ignore unchanged values, so only a real change resets the page.
func (h *HistoryHandler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	ctrl := h.controller(sess)
	h.applyQueryParams(c, ctrl)

	if err := ctrl.Refresh(c.Request.Context()); err != nil {
		log.Printf("History fetch failed: %v", err)
		h.render(c, ctrl, gateway.Message(err, "Nie udało się pobrać historii zadań"))
		return
	}
	h.render(c, ctrl, "")
}

func (h *HistoryHandler) applyQueryParams(c *gin.Context, ctrl *listquery.Controller[models.GeneratedTask]) {
	params := c.Request.URL.Query()
	if params.Has("clear") {
		ctrl.Clear()
		return
	}
	if params.Has("search") {
		ctrl.SetSearch(params.Get("search"))
	}
	for _, name := range []string{listquery.FilterLevel, listquery.FilterSubject, listquery.FilterDate} {
		if params.Has(name) {
			ctrl.SetFilter(name, params.Get(name))
		}
	}
	if params.Has("sortBy") || params.Has("sortOrder") {
		q := ctrl.Query()
		field, order := q.SortBy, q.SortOrder
		if params.Has("sortBy") {
			field = params.Get("sortBy")
		}
		if params.Has("sortOrder") {
			order = params.Get("sortOrder")
		}
		ctrl.SetSort(field, order)
	}
	if params.Has("pageSize") {
		if n, err := strconv.Atoi(params.Get("pageSize")); err == nil {
			ctrl.SetPageSize(n)
		}
	}
	if params.Has("page") {
		if n, err := strconv.Atoi(params.Get("page")); err == nil {
			ctrl.SetPage(n)
		}
	}
}

func (h *HistoryHandler) render(c *gin.Context, ctrl *listquery.Controller[models.GeneratedTask], errMsg string) {
	result, fetched := ctrl.Result()
	query := ctrl.Query()
	expanded, _ := strconv.Atoi(c.Query("expand"))

	cards := make([]taskCard, 0, len(result.Items))
	for _, task := range result.Items {
		cards = append(cards, taskCard{
			Task:     task,
			Parsed:   numberTasks(tasktext.ParseOrEmpty(task.GeneratedText)),
			Expanded: task.ID == expanded,
		})
	}

	data := historyData{
		Page:       pageFor(c, "Historia"),
		Query:      query,
		Result:     result,
		Fetched:    fetched,
		Loading:    ctrl.Loading(),
		Cards:      cards,
		Levels:     historyLevels,
		Subjects:   historySubjects,
		PageSizes:  historyPageSizes,
		Level:      query.Filter(listquery.FilterLevel),
		Subject:    query.Filter(listquery.FilterSubject),
		DateFilter: query.Filter(listquery.FilterDate),
		PrevPage:   result.CurrentPage - 1,
		NextPage:   result.CurrentPage + 1,
	}
	data.Error = errMsg
	c.HTML(http.StatusOK, "history.tmpl", data)
}

// ConfirmDelete renders the confirmation step; the delete itself only runs
// from the confirmed POST.
func (h *HistoryHandler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	c.HTML(http.StatusOK, "confirm.tmpl", confirmData{
		Page:      pageFor(c, "Usuń zadanie"),
		Prompt:    "Czy na pewno chcesz usunąć to zadanie?",
		Action:    fmt.Sprintf("/history/tasks/%s/delete", id),
		CancelURL: "/history",
	})
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/history")
		return
	}

	if err := h.gw.DeleteGeneratedTask(c.Request.Context(), sess.Token, id); err != nil {
		log.Printf("Task delete failed: %v", err)
		h.render(c, h.controller(sess), gateway.Message(err, "Nie udało się usunąć zadania"))
		return
	}
	c.Redirect(http.StatusFound, "/history")
}

// ConfirmBulkDelete carries the selected ids into the confirmation step.
func (h *HistoryHandler) ConfirmBulkDelete(c *gin.Context) {
	ids := c.PostFormArray("ids")
	if len(ids) == 0 {
		c.Redirect(http.StatusFound, "/history")
		return
	}
	hidden := make([]hiddenField, 0, len(ids))
	for _, id := range ids {
		hidden = append(hidden, hiddenField{Name: "ids", Value: id})
	}
	c.HTML(http.StatusOK, "confirm.tmpl", confirmData{
		Page:      pageFor(c, "Usuń zadania"),
		Prompt:    fmt.Sprintf("Czy na pewno chcesz usunąć %d zadań?", len(ids)),
		Action:    "/history/bulk-delete/confirmed",
		CancelURL: "/history",
		Hidden:    hidden,
	})
}

func (h *HistoryHandler) BulkDelete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	var ids []int
	for _, raw := range c.PostFormArray("ids") {
		if id, err := strconv.Atoi(raw); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.Redirect(http.StatusFound, "/history")
		return
	}

	if err := h.gw.DeleteGeneratedTasksBulk(c.Request.Context(), sess.Token, ids); err != nil {
		log.Printf("Bulk delete failed: %v", err)
		h.render(c, h.controller(sess), gateway.Message(err, "Nie udało się usunąć zadań"))
		return
	}
	c.Redirect(http.StatusFound, "/history")
}

// ExportPDF streams the backend-rendered PDF through to the browser as a
// download. The body is opaque here.
func (h *HistoryHandler) ExportPDF(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/history")
		return
	}
	includeSolutions := c.DefaultQuery("includeSolutions", "true") == "true"

	pdf, err := h.gw.ExportTaskPDF(c.Request.Context(), sess.Token, id, includeSolutions)
	if err != nil {
		log.Printf("PDF export failed: %v", err)
		h.render(c, h.controller(sess), gateway.Message(err, "Nie udało się wygenerować PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=zadanie_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
