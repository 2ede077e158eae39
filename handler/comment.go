package handler

import (
	"github.com/gin-gonic/gin"
	"job-dashboard/dto"
	"job-dashboard/pkg/response"
	"net/http"
)

func (h *HTTPHandler) ListComments(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	comments, err := h.deps.CommentService.List(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", comments)
}

func (h *HTTPHandler) CreateComment(c *gin.Context) {
	id, err := pathId(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	comment, err := h.deps.CommentService.Create(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, "comment created", comment)
}
