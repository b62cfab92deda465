package api

import (
	"net/http"

	"github.com/Domenick1991/deskbuddy/internal/deskstore"
	"github.com/Domenick1991/deskbuddy/internal/service/floorplan"
	"github.com/Domenick1991/deskbuddy/internal/viewport"
	"github.com/gin-gonic/gin"
)

type FloorPlanHandler struct {
	service floorplan.FloorPlanUseCase
}

type pointerRequest struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

type sessionResponse struct {
	Session string         `json:"session"`
	State   viewport.State `json:"state"`
}

type viewportResponse struct {
	viewport.State
	SVGTransform string `json:"svg_transform"`
}

func NewFloorPlanHandler(service floorplan.FloorPlanUseCase) *FloorPlanHandler {
	return &FloorPlanHandler{service: service}
}

func (h *FloorPlanHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.newSession)
	router.GET("/:session", h.layout)
	router.POST("/:session/zoom-in", h.action(floorplan.ActionZoomIn, false))
	router.POST("/:session/zoom-out", h.action(floorplan.ActionZoomOut, false))
	router.POST("/:session/reset", h.action(floorplan.ActionReset, false))
	router.POST("/:session/drag/begin", h.action(floorplan.ActionDragBegin, true))
	router.POST("/:session/drag/move", h.action(floorplan.ActionDragMove, true))
	router.POST("/:session/drag/end", h.action(floorplan.ActionDragEnd, false))
	router.GET("/:session/desks/:id", h.selectDesk)
}

func (h *FloorPlanHandler) newSession(c *gin.Context) {
	session, state, err := h.service.NewSession(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Session: session, State: state})
}

func (h *FloorPlanHandler) layout(c *gin.Context) {
	var filter deskstore.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err.Error())
		return
	}
	layout, err := h.service.Layout(c.Request.Context(), c.Param("session"), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

func (h *FloorPlanHandler) action(action floorplan.Action, needsPointer bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pointer viewport.Point
		if needsPointer {
			var req pointerRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, err.Error())
				return
			}
			pointer = viewport.Point{X: *req.X, Y: *req.Y}
		}

		state, err := h.service.Apply(c.Request.Context(), c.Param("session"), action, pointer)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewportResponse{State: state, SVGTransform: state.Transform.SVG()})
	}
}

func (h *FloorPlanHandler) selectDesk(c *gin.Context) {
	notice, err := h.service.SelectDesk(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}
