package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andresuchdata/lotplan/internal/domain"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/andresuchdata/lotplan/internal/repository"
	"github.com/andresuchdata/lotplan/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PlanHandler struct {
	service *service.PlanService
}

func NewPlanHandler(service *service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

type batchRequest struct {
	Plans []domain.PlanRequest `json:"plans"`
}

// CreatePlan solves one instance.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req domain.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(bindStatus(err), gin.H{"error": bindError(err)})
		return
	}

	run, err := h.service.Solve(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "failed to solve plan")
		return
	}

	c.JSON(http.StatusOK, run)
}

// CreateBatch solves several instances; either all succeed or none is returned.
func (h *PlanHandler) CreateBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(bindStatus(err), gin.H{"error": bindError(err)})
		return
	}

	runs, err := h.service.SolveBatch(c.Request.Context(), req.Plans)
	if err != nil {
		h.writeError(c, err, "failed to solve batch")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(runs),
		"runs":  runs,
	})
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	runs, err := h.service.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err, "failed to fetch plans")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(runs),
		"runs":  runs,
	})
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	run, err := h.service.GetRun(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to fetch plan")
		return
	}

	c.JSON(http.StatusOK, run)
}

// ExportPlan streams the order plan as a CSV attachment.
func (h *PlanHandler) ExportPlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payload, err := h.service.ExportCSV(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to export plan")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=plan-%d.csv", id))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return 0, false
	}
	return id, true
}

func (h *PlanHandler) writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, lotsizing.ErrInvalidInstance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func bindStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func bindError(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
	}
	if errors.Is(err, lotsizing.ErrInvalidInstance) {
		return err.Error()
	}
	return "invalid request body: " + err.Error()
}
