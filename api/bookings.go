package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/deskbuddy/internal/calendar"
	"github.com/Domenick1991/deskbuddy/internal/domain"
	"github.com/Domenick1991/deskbuddy/internal/middleware"
	"github.com/Domenick1991/deskbuddy/internal/service/dashboard"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service  dashboard.DashboardUseCase
	location *time.Location
}

type createBookingRequest struct {
	DeskID string `json:"desk_id" binding:"required"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
}

type bookingResponse struct {
	ID         string `json:"id"`
	DeskID     string `json:"desk_id"`
	DeskNumber string `json:"desk_number"`
	Date       string `json:"date"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Created    bool   `json:"created"`
}

type daySummaryResponse struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

type weekResponse struct {
	Start string               `json:"start"`
	End   string               `json:"end"`
	Days  []daySummaryResponse `json:"days"`
}

type monthResponse struct {
	Month      string   `json:"month"`
	BookedDays []string `json:"booked_days"`
}

// NewBookingHandler parses calendar days in location; nil means UTC.
func NewBookingHandler(service dashboard.DashboardUseCase, location *time.Location) *BookingHandler {
	if location == nil {
		location = time.UTC
	}
	return &BookingHandler{service: service, location: location}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.create)
	router.GET("/bookings", h.list)
	router.GET("/calendar/week", h.week)
	router.GET("/calendar/month", h.month)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	date, err := calendar.ParseDay(req.Date, h.location)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	user, _ := middleware.GetUserFromContext(c)
	result, err := h.service.BookDesk(c.Request.Context(), dashboard.BookDeskInput{
		DeskID: req.DeskID,
		Date:   date,
		User:   user,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, toBookingResponse(result.Booking, result.Created))
}

func (h *BookingHandler) list(c *gin.Context) {
	if c.Query("date") == "" {
		badRequest(c, "date is required")
		return
	}
	date, ok := h.dayParam(c)
	if !ok {
		return
	}
	bookings, err := h.service.BookingsForDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	response := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b, false))
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) week(c *gin.Context) {
	date, ok := h.dayParam(c)
	if !ok {
		return
	}
	if date.IsZero() {
		date = time.Now().In(h.location)
	}
	days, err := h.service.Week(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	response := weekResponse{Days: make([]daySummaryResponse, 0, len(days))}
	for _, d := range days {
		response.Days = append(response.Days, daySummaryResponse{Date: d.Date.Format(calendar.DateLayout), Bookings: d.Bookings})
	}
	if len(days) > 0 {
		response.Start = response.Days[0].Date
		response.End = response.Days[len(days)-1].Date
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) month(c *gin.Context) {
	date, ok := h.dayParam(c)
	if !ok {
		return
	}
	if date.IsZero() {
		date = time.Now().In(h.location)
	}
	days, err := h.service.BookedDays(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	response := monthResponse{Month: date.Format("2006-01"), BookedDays: make([]string, 0, len(days))}
	for _, d := range days {
		response.BookedDays = append(response.BookedDays, d.Format(calendar.DateLayout))
	}
	c.JSON(http.StatusOK, response)
}

// dayParam reads the optional ?date= query. A missing value yields the zero
// time and lets the service pick today.
func (h *BookingHandler) dayParam(c *gin.Context) (time.Time, bool) {
	value := c.Query("date")
	if value == "" {
		return time.Time{}, true
	}
	date, err := calendar.ParseDay(value, h.location)
	if err != nil {
		badRequest(c, err.Error())
		return time.Time{}, false
	}
	return date, true
}

func toBookingResponse(b domain.Booking, created bool) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		DeskID:     b.DeskID,
		DeskNumber: b.DeskNumber,
		Date:       b.Date.Format(calendar.DateLayout),
		UserID:     b.UserID,
		UserName:   b.UserName,
		Created:    created,
	}
}
