package handler

import (
	"github.com/gin-gonic/gin"
	"job-dashboard/pkg/response"
	"net/http"
)

func writeList[T any](c *gin.Context, items []T, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, "ok", items)
}

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	items, err := h.deps.LookupService.Users(c.Request.Context())
	writeList(c, items, err)
}

func (h *HTTPHandler) ListDepartments(c *gin.Context) {
	items, err := h.deps.LookupService.Departments(c.Request.Context())
	writeList(c, items, err)
}

func (h *HTTPHandler) ListJobTitles(c *gin.Context) {
	items, err := h.deps.LookupService.JobTitles(c.Request.Context())
	writeList(c, items, err)
}

func (h *HTTPHandler) ListJobTypes(c *gin.Context) {
	items, err := h.deps.LookupService.JobTypes(c.Request.Context())
	writeList(c, items, err)
}

func (h *HTTPHandler) ListPaymentChannels(c *gin.Context) {
	items, err := h.deps.LookupService.PaymentChannels(c.Request.Context())
	writeList(c, items, err)
}
