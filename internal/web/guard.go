package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskflowhq/taskflow/internal/session"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

// underPath reports whether path is base itself or a segment below it, so
// "/dashboard/settings" matches "/dashboard" but "/dashboardfoo" does not.
func underPath(path, base string) bool {
	return path == base || strings.HasPrefix(path, base+"/")
}

// RouteGuard gates navigation on session-cookie presence alone: the cookie
// content is never decoded here. No cookie on a dashboard path redirects to
// the login page; a cookie on the login page redirects to the dashboard.
// Paths outside those two subtrees are not the guard's business.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isAuthPage := underPath(path, loginPath)
		isProtected := underPath(path, dashboardPath)

		if !isAuthPage && !isProtected {
			c.Next()
			return
		}

		_, err := c.Request.Cookie(session.CookieName)
		authenticated := err == nil

		if !authenticated && isProtected {
			c.Redirect(http.StatusTemporaryRedirect, loginPath)
			c.Abort()
			return
		}

		if authenticated && isAuthPage {
			c.Redirect(http.StatusTemporaryRedirect, dashboardPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
