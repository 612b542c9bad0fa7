package handlers

import (
	"net/http"

	"paywall/web"

	"github.com/gin-gonic/gin"
)

// The file server resolves "/" to index.html; asking for index.html by
// name would only earn a redirect back to "/".
func (h *Handler) indexPage(c *gin.Context) { servePage(c, "/") }

func (h *Handler) loginPage(c *gin.Context) { servePage(c, "login.html") }

func (h *Handler) paymentPage(c *gin.Context) { servePage(c, "payment.html") }

// @Summary      Dashboard
// @Description  Protected content; anonymous callers land on /login, unpaid ones on /payment
// @Tags         pages
// @Produce      html
// @Success      200  {string}  string
// @Failure      302  {string}  string
// @Router       /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess, err := h.services.ParseToken(token)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// Pure read of the session; the store is not consulted here. A session
	// issued before payment stays unpaid until login or payment success
	// refreshes it.
	if !sess.HasPaid {
		c.Redirect(http.StatusFound, "/payment")
		return
	}

	servePage(c, "dashboard.html")
}

func servePage(c *gin.Context, name string) {
	c.FileFromFS(name, http.FS(web.Pages))
}
