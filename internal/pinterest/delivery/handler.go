package delivery

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	pindomain "pinflow-backend/internal/pinterest/domain"
	"pinflow-backend/internal/pinterest/usecase"

	"github.com/gin-gonic/gin"
)

// PinterestHandler handles the Pinterest integration HTTP surface:
// publish trigger, auth URL issuance, OAuth callback, status and
// disconnect.
type PinterestHandler struct {
	publisher  *usecase.Publisher
	connectUc  usecase.ConnectUsecase
	appBaseURL string
}

// NewPinterestHandler creates a new PinterestHandler
func NewPinterestHandler(publisher *usecase.Publisher, connectUc usecase.ConnectUsecase, appBaseURL string) *PinterestHandler {
	return &PinterestHandler{
		publisher:  publisher,
		connectUc:  connectUc,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// Publish runs one publish invocation
// ANY /api/pinterest/publish
//
// A timer invocation is recognized by its user agent and logged, but
// handled the same as a manual trigger.
func (h *PinterestHandler) Publish(c *gin.Context) {
	userAgent := strings.ToLower(c.GetHeader("User-Agent"))
	if strings.Contains(userAgent, "cron") || c.GetHeader("X-Scheduled-Trigger") != "" {
		log.Println("[Publisher] Invoked by scheduled trigger")
	}

	summary, err := h.publisher.Run(c.Request.Context(), time.Now())
	if err != nil {
		// Only the due-posts query failing is a hard failure
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetAuthURL returns the Pinterest authorization URL for the
// authenticated user. The browser performs the redirect.
// GET /api/pinterest/auth/url
func (h *PinterestHandler) GetAuthURL(c *gin.Context) {
	userID := c.GetString("userID")

	authURL, err := h.connectUc.BuildAuthURL(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": authURL})
}

// Callback consumes the OAuth redirect from Pinterest. It always
// answers with a redirect back to the dashboard; errors travel as a
// query parameter, never as a response body.
// GET /api/pinterest/auth/callback?code=...&state=...
func (h *PinterestHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")

	if err := h.connectUc.HandleCallback(c.Request.Context(), code, state); err != nil {
		h.redirectWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.appBaseURL+"/dashboard?pinterest_connected=true")
}

// Status reports the user's Pinterest linkage
// GET /api/pinterest/status
func (h *PinterestHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	status, err := h.connectUc.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Disconnect clears the user's Pinterest credential
// DELETE /api/pinterest/connection
func (h *PinterestHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.connectUc.Disconnect(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pinterest account disconnected"})
}

func (h *PinterestHandler) redirectWithError(c *gin.Context, err error) {
	message := err.Error()
	if errors.Is(err, pindomain.ErrMissingAuthCode) {
		message = pindomain.ErrMissingAuthCode.Error()
	}
	c.Redirect(http.StatusFound,
		h.appBaseURL+"/dashboard?pinterest_error="+url.QueryEscape(message))
}
