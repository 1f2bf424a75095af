package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reda-h/wellness-companion/internal/content"
	apierrors "github.com/reda-h/wellness-companion/internal/errors"
)

// ContentHandler serves the static wellness library.
type ContentHandler struct{}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// ListExercises returns the exercise library, optionally filtered by
// trimester ("1st", "2nd", "3rd", "All") and category.
func (h *ContentHandler) ListExercises(c *gin.Context) {
	trimester := c.Query("trimester")
	category := c.Query("category")

	c.JSON(http.StatusOK, content.FilterExercises(trimester, category))
}

// GetTrimesterGuide returns the guide for trimester 1-3.
func (h *ContentHandler) GetTrimesterGuide(c *gin.Context) {
	trimester, err := strconv.Atoi(c.Param("trimester"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid trimester")
		return
	}

	guide, ok := content.Guide(trimester)
	if !ok {
		apierrors.NotFound(c, "Unknown trimester")
		return
	}

	c.JSON(http.StatusOK, guide)
}

// WellnessToday returns the daily tip and the recommended session for the
// requested trimester (default 1).
func (h *ContentHandler) WellnessToday(c *gin.Context) {
	trimester := 1
	if q := c.Query("trimester"); q != "" {
		t, err := strconv.Atoi(q)
		if err != nil || t < 1 || t > 3 {
			apierrors.BadRequest(c, "Invalid trimester")
			return
		}
		trimester = t
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"tip":       content.TipOfDay(now),
		"exercise":  content.DailyPick(now, trimester),
		"trimester": trimester,
	})
}
