package handler

import (
	"github.com/gin-gonic/gin"
	"job-dashboard/pkg/response"
	"net/http"
)

func (h *HTTPHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.deps.StatusService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", statuses)
}

func (h *HTTPHandler) StatusTransitions(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	transitions, err := h.deps.StatusService.Transitions(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", transitions)
}
