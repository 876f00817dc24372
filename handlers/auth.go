package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/middleware"
	"examgen_client/models"
	"examgen_client/session"
	"examgen_client/views"
)

type AuthHandler struct {
	gw         *gateway.Client
	store      *session.Store
	cookieName string
	cookieTTL  int
}

func NewAuthHandler(gw *gateway.Client, store *session.Store, cookieName string, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{
		gw:         gw,
		store:      store,
		cookieName: cookieName,
		cookieTTL:  cookieTTLSeconds,
	}
}

type loginData struct {
	Page
	Email      string
	Submitting bool
}

type registerData struct {
	Page
	models.RegisterRequest
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", loginData{Page: pageFor(c, "Logowanie")})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		data := loginData{Page: pageFor(c, "Logowanie"), Email: req.Email}
		data.Error = "Podaj poprawny adres email i hasło."
		c.HTML(http.StatusBadRequest, "login.tmpl", data)
		return
	}

	resp, err := h.gw.Login(c.Request.Context(), req)
	if err != nil {
		log.Printf("Login failed: %v", err)
		data := loginData{Page: pageFor(c, "Logowanie"), Email: req.Email}
		data.Error = gateway.Message(err, "Błąd połączenia z serwerem")
		c.HTML(http.StatusBadGateway, "login.tmpl", data)
		return
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		data := loginData{Page: pageFor(c, "Logowanie"), Email: req.Email}
		data.Error = resp.Message
		if data.Error == "" {
			data.Error = "Logowanie nie powiodło się"
		}
		c.HTML(http.StatusUnauthorized, "login.tmpl", data)
		return
	}

	h.openSession(c, resp.Token, *resp.User)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", registerData{Page: pageFor(c, "Rejestracja")})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		data := registerData{Page: pageFor(c, "Rejestracja"), RegisterRequest: req}
		data.Error = "Sprawdź poprawność pól formularza (hasło min. 8 znaków)."
		c.HTML(http.StatusBadRequest, "register.tmpl", data)
		return
	}

	resp, err := h.gw.Register(c.Request.Context(), req)
	if err != nil {
		log.Printf("Register failed: %v", err)
		data := registerData{Page: pageFor(c, "Rejestracja"), RegisterRequest: req}
		data.Error = gateway.Message(err, "Błąd połączenia z serwerem")
		c.HTML(http.StatusBadGateway, "register.tmpl", data)
		return
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		data := registerData{Page: pageFor(c, "Rejestracja"), RegisterRequest: req}
		data.Error = resp.Message
		if data.Error == "" {
			data.Error = "Rejestracja nie powiodła się"
		}
		c.HTML(http.StatusBadRequest, "register.tmpl", data)
		return
	}

	h.openSession(c, resp.Token, *resp.User)
}

// Logout drops the server-side session and expires the cookie; both go
// together, there is no half-signed-out state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := middleware.CurrentSession(c); sess != nil {
		h.store.Delete(sess.ID)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, views.Path(views.Landing))
}

// openSession is the only place a session comes into being: token and user
// profile are stored together and the browser gets the session cookie.
func (h *AuthHandler) openSession(c *gin.Context, token string, user models.User) {
	sess := h.store.Create(token, user)
	c.SetCookie(h.cookieName, sess.ID, h.cookieTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, views.Path(views.Initial(true)))
}
