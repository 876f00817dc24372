package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/middleware"
	"examgen_client/views"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Home sends the browser to the initial view for the current session state:
// history when signed in, the public landing page otherwise. There is no
// deep-linking; a reload always starts here.
func (h *RootHandler) Home(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.Redirect(http.StatusFound, views.Path(views.Initial(sess.Authenticated())))
}
