package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/client"
	"github.com/taskflowhq/taskflow/internal/session"
)

// Handlers serves the dashboard gateway: the login/register forms that drive
// the identity API, the session cookie, and the pages behind the route guard.
type Handlers struct {
	api *client.Client
	log *slog.Logger
}

func NewHandlers(api *client.Client, log *slog.Logger) *Handlers {
	return &Handlers{api: api, log: log}
}

func NewRouter(log *slog.Logger, env string, api *client.Client) *gin.Engine {
	if env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(Templates())
	r.Use(RouteGuard())

	h := NewHandlers(api, log)

	r.GET("/", h.Landing)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)

	r.GET("/dashboard", h.Dashboard)
	r.GET("/dashboard/settings", h.SettingsPage)
	r.POST("/dashboard/settings", h.UpdateSettings)

	return r
}

// Templates look up every key they mention, so each render passes the full
// key set even when empty.

func (h *Handlers) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing", gin.H{"Toast": ""})
}

func (h *Handlers) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", loginData("", nil, ""))
}

func loginData(email string, fields map[string]string, toast string) gin.H {
	if fields == nil {
		fields = map[string]string{}
	}

	return gin.H{"Email": email, "Fields": fields, "Toast": toast}
}

func registerData(in client.RegisterInput, toast string) gin.H {
	return gin.H{
		"Username":  in.Username,
		"Email":     in.Email,
		"FirstName": in.FirstName,
		"LastName":  in.LastName,
		"Toast":     toast,
	}
}

func (h *Handlers) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	res := h.api.Login(c.Request.Context(), email, password)

	if !res.Success {
		fields := res.FieldErrors(email, password)
		toast := ""
		if len(fields) == 0 {
			toast = res.Error
		}

		c.HTML(http.StatusOK, "login", loginData(email, fields, toast))
		return
	}

	if err := session.WriteLogin(c.Writer, res.User); err != nil {
		h.log.Error("writing session cookie", "err", err)
	}

	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (h *Handlers) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register", registerData(client.RegisterInput{}, ""))
}

func (h *Handlers) Register(c *gin.Context) {
	in := client.RegisterInput{
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
	}

	u, err := h.api.Register(c.Request.Context(), in)
	if err != nil {
		c.HTML(http.StatusOK, "register", registerData(in, err.Error()))
		return
	}

	// Registration starts a session the same way login does.
	if err := session.WriteLogin(c.Writer, u); err != nil {
		h.log.Error("writing session cookie", "err", err)
	}

	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := session.FromRequest(c.Request)
	sess.Logout(c.Writer)

	c.Redirect(http.StatusSeeOther, loginPath)
}

func (h *Handlers) Dashboard(c *gin.Context) {
	u, _ := session.Read(c.Request)

	c.HTML(http.StatusOK, "dashboard", gin.H{"User": u})
}

func (h *Handlers) SettingsPage(c *gin.Context) {
	u, _ := session.Read(c.Request)

	c.HTML(http.StatusOK, "settings", gin.H{"User": u})
}

// UpdateSettings applies a profile edit to the session snapshot only; the
// server record is untouched and the two drift until the next login.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	sess := session.FromRequest(c.Request)

	updates := session.Updates{}
	if v, ok := c.GetPostForm("firstName"); ok {
		updates.FirstName = &v
	}
	if v, ok := c.GetPostForm("lastName"); ok {
		updates.LastName = &v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		updates.Phone = &v
	}
	if v, ok := c.GetPostForm("bio"); ok {
		updates.Bio = &v
	}

	if err := sess.UpdateUser(c.Writer, updates); err != nil {
		h.log.Error("updating session cookie", "err", err)
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/settings")
}
