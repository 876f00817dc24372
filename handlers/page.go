package handlers

import (
	"github.com/gin-gonic/gin"

	"examgen_client/middleware"
	"examgen_client/models"
)

// Page carries what every template needs: who is signed in plus the inline
// error/notice slots. Screens embed it in their own view data.
type Page struct {
	Title         string
	User          *models.User
	Authenticated bool
	Error         string
	Notice        string
}

func pageFor(c *gin.Context, title string) Page {
	sess := middleware.CurrentSession(c)
	page := Page{Title: title, Authenticated: sess.Authenticated()}
	if page.Authenticated {
		page.User = &sess.User
	}
	return page
}

// hiddenField is one carried-over form value on a confirmation page.
type hiddenField struct {
	Name  string
	Value string
}

// confirmData drives the generic destructive-operation confirmation view.
type confirmData struct {
	Page
	Prompt    string
	Action    string
	CancelURL string
	Hidden    []hiddenField
}

// taskView numbers an exam task for display, 1-based.
type taskView struct {
	Index int
	Task  models.ExamTask
}

func numberTasks(tasks []models.ExamTask) []taskView {
	views := make([]taskView, 0, len(tasks))
	for i, task := range tasks {
		views = append(views, taskView{Index: i + 1, Task: task})
	}
	return views
}
