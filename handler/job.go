package handler

import (
	"github.com/gin-gonic/gin"
	"job-dashboard/dto"
	"job-dashboard/pkg/response"
	"net/http"
)

type HTTPHandler struct {
	deps ServiceDependencies
}

func NewHTTPHandler(deps ServiceDependencies) *HTTPHandler {
	return &HTTPHandler{deps: deps}
}

func (h *HTTPHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.deps.JobService.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, "job created", job)
}

func (h *HTTPHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	page, err := h.deps.JobService.List(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", page)
}

func (h *HTTPHandler) GetJob(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.deps.JobService.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", job)
}

func (h *HTTPHandler) UpdateJob(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.deps.JobService.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "job updated", job)
}

func (h *HTTPHandler) DeleteJob(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.deps.JobService.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "job deleted", gin.H{"id": id})
}

func (h *HTTPHandler) ChangeStatus(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.deps.JobService.ChangeStatus(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "status changed", job)
}

func (h *HTTPHandler) AssignMember(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.AssignMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.deps.JobService.AssignMembers(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "members assigned", job)
}

func (h *HTTPHandler) UnassignMember(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	userId, err := pathId(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	job, err := h.deps.JobService.UnassignMember(c.Request.Context(), actorFrom(c), id, userId)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "member removed", job)
}

func (h *HTTPHandler) ActivityLog(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.deps.JobService.ActivityLog(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", entries)
}
