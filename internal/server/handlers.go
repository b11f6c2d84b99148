package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marketscout/internal/aggregator"
	"marketscout/internal/alpaca"
	"marketscout/internal/validation"
)

const defaultTimeframe = "1Day"

// Root lists the available endpoints
// GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Market data API is running",
		"endpoints": []string{
			"/test", "/finnhub/{symbol}", "/news/{symbol}", "/stocks/{symbol}",
			"/search", "/cache/stats", "/cache/clear",
		},
	})
}

// Test is a liveness probe
// GET /test
func (h *Handler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!", "status": "OK"})
}

// GetFinnhub returns the merged earnings/profile/metrics record
// GET /finnhub/:symbol?company_name=
func (h *Handler) GetFinnhub(c *gin.Context) {
	symbol, name, err := h.validator.Finnhub(c.Param("symbol"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if override := strings.TrimSpace(c.Query("company_name")); override != "" {
		name = override
	}

	record, err := h.services.Finnhub.Get(c.Request.Context(), symbol, name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetNews returns recent articles with sentiment labels
// GET /news/:symbol
func (h *Handler) GetNews(c *gin.Context) {
	symbol, name, err := h.validator.News(c.Param("symbol"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.services.News.Get(c.Request.Context(), symbol, name)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetStocks returns historical bars
// GET /stocks/:symbol?start=&end=&timeframe=
func (h *Handler) GetStocks(c *gin.Context) {
	params, err := h.validator.Stocks(
		c.Param("symbol"),
		c.Query("start"),
		c.Query("end"),
		c.DefaultQuery("timeframe", defaultTimeframe),
	)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.services.Stocks.Get(c.Request.Context(), alpaca.BarsQuery{
		Symbol:    params.Symbol,
		Start:     params.Start,
		End:       params.End,
		Timeframe: params.Timeframe,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type searchRequest struct {
	Company string `json:"company"`
}

// PostSearch scrapes headlines and summarizes their sentiment
// POST /search {"company": "..."}
func (h *Handler) PostSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Company) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing 'company' parameter"})
		return
	}

	company, err := h.validator.Company(req.Company)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.services.Search.Get(c.Request.Context(), company)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type classStats struct {
	Class    string  `json:"class"`
	TTLHours float64 `json:"ttl_hours"`
	Total    int     `json:"total"`
	Valid    int     `json:"valid"`
	Expired  int     `json:"expired"`
}

// CacheStats reports per-class entry counts
// GET /cache/stats
func (h *Handler) CacheStats(c *gin.Context) {
	stats := h.services.Cache.Stats()

	out := make([]classStats, len(stats))
	for i, s := range stats {
		out[i] = classStats{
			Class:    string(s.Class),
			TTLHours: s.TTLHours,
			Total:    s.Total,
			Valid:    s.Valid,
			Expired:  s.Expired,
		}
	}
	c.JSON(http.StatusOK, gin.H{"classes": out})
}

// CacheClear drops every cached entry
// POST /cache/clear
func (h *Handler) CacheClear(c *gin.Context) {
	h.services.Cache.Clear()
	h.logger.Info("cache cleared")
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}

// writeError maps validation and aggregator errors to a status and a
// {"detail": ...} body.
func (h *Handler) writeError(c *gin.Context, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	}
	c.JSON(status, gin.H{"detail": detail})
}

func statusFor(err error) (int, string) {
	var ve *validation.Error
	if errors.As(err, &ve) {
		if errors.Is(err, validation.ErrUnknownSymbol) {
			return http.StatusNotFound, ve.Detail
		}
		return http.StatusBadRequest, ve.Detail
	}

	var ae *aggregator.Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch ae.Kind {
	case aggregator.KindNotFound:
		return http.StatusNotFound, ae.Err.Error()
	case aggregator.KindTimeout:
		return http.StatusGatewayTimeout, "Request timeout"
	case aggregator.KindRateLimited:
		return http.StatusTooManyRequests, "Upstream rate limit exceeded"
	default:
		return http.StatusBadGateway, ae.Error()
	}
}
