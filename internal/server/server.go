// Package server exposes the health log over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ranjidha/myHealth/internal/coerce"
	"github.com/ranjidha/myHealth/internal/logcsv"
	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/service"
	"github.com/ranjidha/myHealth/internal/store"
)

// DataSource yields the full collection, ascending by date.
type DataSource interface {
	Load(ctx context.Context) ([]model.DailyLog, error)
}

// StoreSource adapts the local CSV store to the DataSource interface.
type StoreSource struct {
	Store store.Store
}

func (s StoreSource) Load(ctx context.Context) ([]model.DailyLog, error) {
	return s.Store.Load()
}

// Server wires the HTTP API over a data source. Writes go through the
// local store; a nil store makes the API read-only, which is how the
// published-sheet source is served.
type Server struct {
	src    DataSource
	store  *store.Store
	logger *zap.Logger
}

func New(src DataSource, st *store.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{src: src, store: st, logger: logger}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.GET("/logs", s.listLogs)
		api.PUT("/logs", s.upsertLog)
		api.DELETE("/logs/:date", s.deleteLog)
		api.GET("/summary", s.getSummary)
		api.GET("/export", s.exportCSV)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listLogs(c *gin.Context) {
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	logs, err := s.src.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.FilterRange(logs, from, to))
}

func (s *Server) getSummary(c *gin.Context) {
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	logs, err := s.src.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, service.BuildSummary(service.FilterRange(logs, from, to)))
}

func (s *Server) upsertLog(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "source is read-only"})
		return
	}

	var body struct {
		Date          string `json:"date"`
		WeightLbs     any    `json:"weight_lbs"`
		SuryaNamaskar any    `json:"surya_namaskar"`
		WaterGlasses  any    `json:"water_glasses_8oz"`
		FastingHours  any    `json:"fasting_window_hours"`
		Breakfast     string `json:"breakfast"`
		Lunch         string `json:"lunch"`
		Dinner        string `json:"dinner"`
		Snacks        string `json:"snacks"`
		Notes         string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := model.ParseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := model.DailyLog{
		Date:          date,
		WeightLbs:     coerce.Float(body.WeightLbs),
		SuryaNamaskar: coerce.Int(body.SuryaNamaskar, 0),
		WaterGlasses:  coerce.Int(body.WaterGlasses, 0),
		FastingHours:  coerce.Int(body.FastingHours, 0),
		Breakfast:     strings.TrimSpace(body.Breakfast),
		Lunch:         strings.TrimSpace(body.Lunch),
		Dinner:        strings.TrimSpace(body.Dinner),
		Snacks:        strings.TrimSpace(body.Snacks),
		Notes:         strings.TrimSpace(body.Notes),
	}
	if err := service.ValidateDailyLog(entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := s.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logs = store.Upsert(logs, entry)
	if err := s.store.Persist(logs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) deleteLog(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "source is read-only"})
		return
	}

	date, err := model.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logs, err := s.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logs, deleted := store.Delete(logs, date)
	if deleted {
		if err := s.store.Persist(logs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"date": date.String(), "deleted": deleted})
}

func (s *Server) exportCSV(c *gin.Context) {
	from, to, ok := rangeQuery(c)
	if !ok {
		return
	}
	logs, err := s.src.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
	if err := logcsv.Encode(c.Writer, service.FilterRange(logs, from, to)); err != nil {
		s.logger.Error("export write failed", zap.Error(err))
	}
}

func rangeQuery(c *gin.Context) (model.Date, model.Date, bool) {
	var from, to model.Date
	if raw := c.Query("from"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return from, to, false
		}
		from = d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return from, to, false
		}
		to = d
	}
	return from, to, true
}
