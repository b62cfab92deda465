package api

import (
	"net/http"

	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/middleware"
	"github.com/Domenick1991/deskbuddy/internal/service/dashboard"
	"github.com/gin-gonic/gin"
)

type DeskHandler struct {
	service dashboard.DashboardUseCase
}

type statsResponse struct {
	deskstore.Stats
	AvailablePercent int `json:"available_percent"`
	OccupiedPercent  int `json:"occupied_percent"`
	ReservedPercent  int `json:"reserved_percent"`
}

func NewDeskHandler(service dashboard.DashboardUseCase) *DeskHandler {
	return &DeskHandler{service: service}
}

func (h *DeskHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/stats", h.stats)
	router.GET("/available", h.available)
	router.GET("/filters", h.filters)
	router.POST("/:id/reserve", h.reserve)
}

func (h *DeskHandler) list(c *gin.Context) {
	var filter deskstore.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err.Error())
		return
	}
	desks, err := h.service.ListDesks(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, desks)
}

func (h *DeskHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statsResponse{
		Stats:            stats,
		AvailablePercent: stats.Percent(stats.Available),
		OccupiedPercent:  stats.Percent(stats.Occupied),
		ReservedPercent:  stats.Percent(stats.Reserved),
	})
}

func (h *DeskHandler) available(c *gin.Context) {
	desks, err := h.service.AvailableDesks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, desks)
}

func (h *DeskHandler) filters(c *gin.Context) {
	options, err := h.service.FilterOptions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *DeskHandler) reserve(c *gin.Context) {
	user, _ := middleware.GetUserFromContext(c)
	desk, err := h.service.ReserveDesk(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, desk)
}
