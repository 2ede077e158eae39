package handler

import (
	"github.com/gin-gonic/gin"
	"job-dashboard/dto"
	"job-dashboard/pkg/response"
	"net/http"
)

func (h *HTTPHandler) GetJobTablePreference(c *gin.Context) {
	pref, err := h.deps.PreferenceService.GetJobTable(c.Request.Context(), actorFrom(c).ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", pref)
}

func (h *HTTPHandler) SaveJobTablePreference(c *gin.Context) {
	var req dto.JobTablePreference
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	pref, err := h.deps.PreferenceService.SaveJobTable(c.Request.Context(), actorFrom(c).ID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "preference saved", pref)
}

func (h *HTTPHandler) ListNotifications(c *gin.Context) {
	var query dto.NotificationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	items, err := h.deps.NotificationService.List(c.Request.Context(), actorFrom(c).ID, query.UnreadOnly)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", items)
}

func (h *HTTPHandler) MarkNotificationRead(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.deps.NotificationService.MarkRead(c.Request.Context(), actorFrom(c).ID, id); err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "notification read", gin.H{"id": id})
}
