// Package api exposes the activity directory over HTTP.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/directory"
	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/metrics"
)

// Handler serves the activity endpoints from an injected directory.
type Handler struct {
	Store directory.Store
	Log   *zap.Logger
}

// NewHandler builds a Handler. A nil logger is replaced with a no-op one.
func NewHandler(store directory.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Log: log}
}

// RegisterRoutes wires the activity endpoints onto r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/activities", h.ListActivities)
	r.POST("/activities/:name/signup", h.Signup)
	r.DELETE("/activities/:name/participants", h.Unregister)
	r.GET("/healthz", healthz)
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email, ok := c.GetQuery("email")
	if !ok {
		metrics.RecordRoster(metrics.OpEnroll, name, metrics.OutcomeMalformed)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "email query parameter is required"})
		return
	}

	msg, err := h.Store.Enroll(name, email)
	if err != nil {
		h.reject(c, metrics.OpEnroll, name, email, err)
		return
	}

	metrics.RecordRoster(metrics.OpEnroll, name, metrics.OutcomeSuccess)
	h.refreshGauge(name)
	h.Log.Info("participant signed up",
		zap.String("activity", name),
		zap.String("email", email),
		zap.String("request_id", requestID(c)),
	)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email, ok := c.GetQuery("email")
	if !ok {
		metrics.RecordRoster(metrics.OpWithdraw, name, metrics.OutcomeMalformed)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "email query parameter is required"})
		return
	}

	msg, err := h.Store.Withdraw(name, email)
	if err != nil {
		h.reject(c, metrics.OpWithdraw, name, email, err)
		return
	}

	metrics.RecordRoster(metrics.OpWithdraw, name, metrics.OutcomeSuccess)
	h.refreshGauge(name)
	h.Log.Info("participant removed",
		zap.String("activity", name),
		zap.String("email", email),
		zap.String("request_id", requestID(c)),
	)
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// reject maps a directory error onto the response.
func (h *Handler) reject(c *gin.Context, op, name, email string, err error) {
	status, outcome, detail := classify(err)
	// Unknown activity names are client input; keep them out of the metric label space.
	label := name
	if errors.Is(err, directory.ErrActivityNotFound) {
		label = ""
	}
	metrics.RecordRoster(op, label, outcome)

	h.Log.Warn("roster change rejected",
		zap.String("operation", op),
		zap.String("activity", name),
		zap.String("email", email),
		zap.Int("status", status),
		zap.String("request_id", requestID(c)),
		zap.Error(err),
	)
	c.JSON(status, gin.H{"detail": detail})
}

func classify(err error) (status int, outcome, detail string) {
	switch {
	case errors.Is(err, directory.ErrActivityNotFound):
		return http.StatusNotFound, metrics.OutcomeNotFound, "Activity not found"
	case errors.Is(err, directory.ErrParticipantNotFound):
		return http.StatusNotFound, metrics.OutcomeNotFound, "Student is not signed up for this activity"
	case errors.Is(err, directory.ErrAlreadySignedUp):
		return http.StatusBadRequest, metrics.OutcomeConflict, "Student is already signed up for this activity"
	case errors.Is(err, directory.ErrActivityFull):
		return http.StatusBadRequest, metrics.OutcomeFull, "Activity is full"
	}
	return http.StatusInternalServerError, "error", err.Error()
}

func (h *Handler) refreshGauge(name string) {
	if a, err := h.Store.Get(name); err == nil {
		metrics.SetParticipants(name, len(a.Participants))
	}
}
