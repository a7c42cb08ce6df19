package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/google/uuid"

	"lotto/internal/engine"
	"lotto/internal/services"
)

const (
	tenantHeader    = "X-Tenant-ID"
	tenantCookie    = "lottery_tenant"
	tenantKey       = "tenantID"
	tenantCookieAge = 24 * 60 * 60
)

// HTTPHandler holds the dependencies for the HTTP handlers, like the lottery service.
type HTTPHandler struct {
	service *services.LotteryService
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(service *services.LotteryService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type numberURI struct {
	Number int `uri:"number" binding:"required,min=1"`
}

// RegisterPublicRoutes registers routes that need no tenant.
func (h *HTTPHandler) RegisterPublicRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Health)
	router.GET("/api/prizes", h.GetPrizes)
}

// RegisterTenantRoutes registers the game routes. The group must run TenantMiddleware.
func (h *HTTPHandler) RegisterTenantRoutes(router gin.IRouter) {
	router.GET("/api/game", h.GetGame)
	router.DELETE("/api/game", h.EndSession)
	router.POST("/api/game/numbers/:number", h.ToggleNumber)
	router.POST("/api/game/quick-pick", h.QuickPick)
	router.DELETE("/api/game/selection", h.ClearSelection)
	router.POST("/api/game/play", h.Play)
	router.GET("/api/game/history", h.GetHistory)
	router.GET("/api/game/history.csv", h.ExportHistoryCSV)
}

// TenantMiddleware identifies the caller by header or cookie, issuing a new
// tenant cookie to first-time visitors.
func (h *HTTPHandler) TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(tenantHeader))
		if tenantID == "" {
			if cookie, err := c.Cookie(tenantCookie); err == nil {
				tenantID = cookie
			}
		}
		if tenantID == "" {
			tenantID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(tenantCookie, tenantID, tenantCookieAge, "/", "", false, true)
		}
		c.Set(tenantKey, tenantID)
		c.Next()
	}
}

func tenantID(c *gin.Context) string {
	return c.GetString(tenantKey)
}

// respondError maps engine errors onto status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrInvalidState):
		status = http.StatusConflict
	default:
		logger.Errorf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// Health reports liveness.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPrizes returns the game rules and the prize ladder. Without a tenant
// the jackpot tier shows the minimum jackpot.
func (h *HTTPHandler) GetPrizes(c *gin.Context) {
	cfg := h.service.Config()
	c.JSON(http.StatusOK, gin.H{
		"config": cfg,
		"tiers":  engine.Ladder(cfg, cfg.MinJackpot),
	})
}

// GetGame returns the caller's game state.
func (h *HTTPHandler) GetGame(c *gin.Context) {
	state, err := h.service.GetState(tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ToggleNumber selects or deselects one number.
func (h *HTTPHandler) ToggleNumber(c *gin.Context) {
	var uri numberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "number must be a positive integer"})
		return
	}

	// The upper bound depends on the game, so the engine checks it.
	state, err := h.service.ToggleNumber(tenantID(c), uri.Number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// QuickPick fills the selection with random numbers.
func (h *HTTPHandler) QuickPick(c *gin.Context) {
	state, err := h.service.QuickPick(tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ClearSelection empties the selection.
func (h *HTTPHandler) ClearSelection(c *gin.Context) {
	state, err := h.service.ClearSelection(tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Play runs a draw and returns its result along with the new state.
func (h *HTTPHandler) Play(c *gin.Context) {
	tenant := tenantID(c)
	result, err := h.service.Play(tenant)
	if err != nil {
		respondError(c, err)
		return
	}
	state, err := h.service.GetState(tenant)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": result,
		"state":  state,
	})
}

// GetHistory returns past draws, most recent first.
func (h *HTTPHandler) GetHistory(c *gin.Context) {
	history, err := h.service.GetHistory(tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// EndSession discards the caller's game.
func (h *HTTPHandler) EndSession(c *gin.Context) {
	h.service.ClearSession(tenantID(c))
	c.Status(http.StatusNoContent)
}

// ExportHistoryCSV handles the request to download the draw history as a CSV file.
func (h *HTTPHandler) ExportHistoryCSV(c *gin.Context) {
	history, err := h.service.GetHistory(tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=draw_history.csv")

	// Add BOM to ensure UTF-8 compatibility in Excel
	c.Writer.Write([]byte("\xef\xbb\xbf"))

	w := csv.NewWriter(c.Writer)

	if err := w.Write([]string{"drawn_at", "winning_numbers", "player_numbers", "matches", "prize", "outcome"}); err != nil {
		logger.Infof("Error writing CSV header: %v", err)
		c.String(http.StatusInternalServerError, "Error writing CSV")
		return
	}

	for _, result := range history {
		row := []string{
			result.DrawnAt.Format(time.RFC3339),
			joinNumbers(result.WinningNumbers),
			joinNumbers(result.PlayerNumbers),
			strconv.Itoa(result.Matches),
			strconv.FormatInt(result.Prize, 10),
			string(result.Outcome),
		}
		if err := w.Write(row); err != nil {
			logger.Infof("Error writing CSV row: %v", err)
			c.String(http.StatusInternalServerError, "Error writing CSV")
			return
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		logger.Infof("Error flushing CSV writer: %v", err)
		c.String(http.StatusInternalServerError, "Error writing CSV")
	}
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
