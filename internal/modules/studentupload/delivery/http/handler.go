package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/campus-portal/internal/modules/studentupload/dto"
	studentupload "github.com/campuskit/campus-portal/internal/modules/studentupload/service"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/response"
	"github.com/campuskit/campus-portal/pkg/validator"
)

type StudentUploadHandler struct {
	service        studentupload.StudentUploadService
	maxUploadBytes int64
}

func NewStudentUploadHandler(service studentupload.StudentUploadService, maxUploadBytes int64) *StudentUploadHandler {
	return &StudentUploadHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func (h *StudentUploadHandler) Create(c *gin.Context) {
	principal, err := response.GetPrincipal(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	studentID, err := uuid.Parse(principal.SubjectID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var input dto.CreateUploadInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := payload.FromMultipart(fileHeader, h.maxUploadBytes)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	meta, err := h.service.Create(c.Request.Context(), studentID, input, file, c.ClientIP())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meta)
}

func (h *StudentUploadHandler) List(c *gin.Context) {
	principal, err := response.GetPrincipal(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	studentID, err := uuid.Parse(principal.SubjectID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	uploads, err := h.service.ListByOwner(c.Request.Context(), studentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, uploads)
}

func (h *StudentUploadHandler) Download(c *gin.Context) {
	principal, err := response.GetPrincipal(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	file, err := h.service.GetFile(c.Request.Context(), principal, id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}
