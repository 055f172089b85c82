package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitclub-admin-backend/internal/analytics"
	"fitclub-admin-backend/internal/model"
	"fitclub-admin-backend/internal/notification"
)

// filterParamsFromQuery extracts and validates the five filter
// dimensions from the request query string.
func filterParamsFromQuery(c *gin.Context) (analytics.FilterParams, error) {
	params := analytics.FilterParams{
		Search: c.Query("search"),
	}

	switch status := c.Query("status"); status {
	case "", "all":
	case string(model.StatusConfirmed), string(model.StatusCancelled):
		params.Status = model.ReservationStatus(status)
	default:
		return params, fmt.Errorf("invalid status %q", status)
	}

	if raw := c.Query("location_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, fmt.Errorf("invalid location_id %q", raw)
		}
		params.LocationID = id
	}

	if raw := c.Query("instructor_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, fmt.Errorf("invalid instructor_id %q", raw)
		}
		params.InstructorID = id
	}

	switch mode := analytics.DateMode(c.Query("range")); mode {
	case "", analytics.DateModeAll:
		params.DateMode = analytics.DateModeAll
	case analytics.DateModeToday, analytics.DateModeWeek, analytics.DateModeMonth:
		params.DateMode = mode
	default:
		return params, fmt.Errorf("invalid range %q", mode)
	}

	for _, bound := range []struct {
		name  string
		value string
		dest  *string
	}{
		{"start_date", c.Query("start_date"), &params.StartDate},
		{"end_date", c.Query("end_date"), &params.EndDate},
	} {
		if bound.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", bound.value); err != nil {
			return params, fmt.Errorf("invalid %s %q", bound.name, bound.value)
		}
		*bound.dest = bound.value
	}

	return params, nil
}

// GetReservations handles GET /api/reservations: the filtered view,
// one annotated row per reservation.
func (h *Handler) GetReservations(c *gin.Context) {
	params, err := filterParamsFromQuery(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := h.engine.Rows(params)
	c.JSON(http.StatusOK, gin.H{
		"total":        len(rows),
		"reservations": rows,
	})
}

// GetSessions handles GET /api/reservations/sessions: the per-session
// aggregates of the filtered view.
func (h *Handler) GetSessions(c *gin.Context) {
	params, err := filterParamsFromQuery(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.engine.Sessions(params))
}

// GetSummary handles GET /api/reservations/summary: the dashboard KPIs.
func (h *Handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Summary())
}

// GetCharts handles GET /api/reservations/charts: the ranking tables.
func (h *Handler) GetCharts(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Charts())
}

// ExportReservations handles GET /api/reservations/export: the
// filtered view as a downloadable CSV document.
func (h *Handler) ExportReservations(c *gin.Context) {
	params, err := filterParamsFromQuery(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, filename := h.engine.Export(params)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", doc)
}

// CancelReservation handles POST /api/reservations/:id/cancel. On
// success every derived view is rebuilt from the reloaded record list
// and the sede's subscribers are notified.
func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	cancelled, err := h.engine.Cancel(c.Request.Context(), id)
	switch {
	case errors.Is(err, analytics.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	case errors.Is(err, analytics.ErrNotCancellable):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Reservation is not confirmed"})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reservation"})
		return
	}

	if h.pool != nil {
		locationID, _ := analytics.ResolveLocationID(cancelled)
		h.pool.Dispatch(notification.CancellationAlert{
			ReservationID: cancelled.ID,
			LocationID:    locationID,
			LocationName:  analytics.ResolveLocationName(cancelled),
			ClassName:     analytics.ResolveClassName(cancelled),
			Date:          cancelled.ReservationDate.Format("02/01/2006"),
			Time:          analytics.StartTimeHHMM(cancelled),
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "id": id})
}
