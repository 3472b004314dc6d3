package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"StockCompass/internal/advisor"
	"StockCompass/internal/ai"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	engine  *gin.Engine
	httpSrv *http.Server
	advisor *advisor.Advisor
	ai      *ai.Manager
}

// New builds the router. addr is the listen address, e.g. ":8080".
func New(addr string, adv *advisor.Advisor, manager *ai.Manager) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:  gin.New(),
		advisor: adv,
		ai:      manager,
	}
	s.engine.Use(gin.Recovery())
	s.engine.Use(corsMiddleware())

	s.setupRoutes()

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	return s
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api")
	{
		api.GET("/score/:ticker", s.handleScore)
		api.GET("/recommendations/monthly", s.handleMonthly)
		api.GET("/recommendations/sector/:sector", s.handleSector)
		api.GET("/outlook/:month", s.handleOutlook)
		api.GET("/seasonal/:ticker", s.handleSeasonal)
		api.GET("/ai/status", s.handleAIStatus)
		api.GET("/ai/recommendations", s.handleAIRecommendations)
		api.GET("/cache/status", s.handleCacheStatus)
		api.POST("/cache/clear", s.handleCacheClear)
	}
}

// Start runs the listener until the context is canceled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] http server listening on %s", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("[INFO] shutting down http server")
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
}

func (s *Server) handleScore(c *gin.Context) {
	ticker := c.Param("ticker")
	month := time.Now().Month()
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		month = time.Month(n)
	}

	analysis, err := s.advisor.AnalyzeStock(c.Request.Context(), ticker, month)
	if err != nil {
		log.Printf("[ERROR] score %s: %v", ticker, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
}

func (s *Server) handleMonthly(c *gin.Context) {
	report, err := s.advisor.MonthlyRecommendations(c.Request.Context(), nil)
	if err != nil {
		log.Printf("[ERROR] monthly recommendations: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func (s *Server) handleSector(c *gin.Context) {
	sector := c.Param("sector")
	report, err := s.advisor.SectorRecommendations(c.Request.Context(), sector)
	if err != nil {
		log.Printf("[ERROR] sector recommendations %s: %v", sector, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func (s *Server) handleSeasonal(c *gin.Context) {
	ticker := c.Param("ticker")
	var month time.Month
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		month = time.Month(n)
	}
	analysis, err := s.advisor.SeasonalAnalysis(c.Request.Context(), ticker, month)
	if err != nil {
		log.Printf("[ERROR] seasonal %s: %v", ticker, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": analysis})
}

func (s *Server) handleOutlook(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("month"))
	if err != nil || n < 1 || n > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
		return
	}
	outlook := s.advisor.MonthOutlook(c.Request.Context(), time.Month(n))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": outlook})
}

func (s *Server) handleAIStatus(c *gin.Context) {
	statuses := s.ai.Status(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "providers": statuses})
}

func (s *Server) handleCacheStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "caches": s.advisor.CacheStatus()})
}

func (s *Server) handleAIRecommendations(c *gin.Context) {
	var tickers []string
	if q := c.Query("tickers"); q != "" {
		for _, t := range strings.Split(q, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tickers = append(tickers, strings.ToUpper(t))
			}
		}
	}
	result, err := s.advisor.AIRecommendations(c.Request.Context(), tickers)
	if err != nil {
		log.Printf("[ERROR] ai recommendations: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (s *Server) handleCacheClear(c *gin.Context) {
	if ticker := c.Query("ticker"); ticker != "" {
		removed := s.advisor.ClearTickerCaches(ticker)
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed, "ticker": ticker})
		return
	}
	removed := s.advisor.ClearCaches()
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}
