package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/campus-portal/internal/modules/notice/dto"
	notice "github.com/campuskit/campus-portal/internal/modules/notice/service"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/response"
	"github.com/campuskit/campus-portal/pkg/validator"
)

type NoticeHandler struct {
	service        notice.NoticeService
	maxUploadBytes int64
}

func NewNoticeHandler(service notice.NoticeService, maxUploadBytes int64) *NoticeHandler {
	return &NoticeHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func (h *NoticeHandler) bindUpload(c *gin.Context) (dto.CreateNoticeInput, payload.Payload, bool) {
	var input dto.CreateNoticeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return input, payload.Payload{}, false
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return input, payload.Payload{}, false
	}

	file, err := payload.FromMultipart(fileHeader, h.maxUploadBytes)
	if err != nil {
		response.ResponseError(c, err)
		return input, payload.Payload{}, false
	}

	return input, file, true
}

func (h *NoticeHandler) CreateTeacherNotice(c *gin.Context) {
	input, file, ok := h.bindUpload(c)
	if !ok {
		return
	}

	meta, err := h.service.CreateTeacherNotice(c.Request.Context(), input, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meta)
}

func (h *NoticeHandler) ListTeacherNotices(c *gin.Context) {
	notices, err := h.service.ListTeacherNotices(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) DownloadTeacherNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	file, err := h.service.GetTeacherNoticeFile(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}

func (h *NoticeHandler) CreateHODNotice(c *gin.Context) {
	input, file, ok := h.bindUpload(c)
	if !ok {
		return
	}

	meta, err := h.service.CreateHODNotice(c.Request.Context(), input, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meta)
}

func (h *NoticeHandler) ListHODNotices(c *gin.Context) {
	notices, err := h.service.ListHODNotices(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) DownloadHODNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	file, err := h.service.GetHODNoticeFile(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}
