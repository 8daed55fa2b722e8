package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campuskit/campus-portal/internal/modules/personalfile/dto"
	personalfile "github.com/campuskit/campus-portal/internal/modules/personalfile/service"
	"github.com/campuskit/campus-portal/pkg/payload"
	"github.com/campuskit/campus-portal/pkg/response"
	"github.com/campuskit/campus-portal/pkg/validator"
)

type PersonalFileHandler struct {
	service        personalfile.PersonalFileService
	maxUploadBytes int64
}

func NewPersonalFileHandler(service personalfile.PersonalFileService, maxUploadBytes int64) *PersonalFileHandler {
	return &PersonalFileHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func (h *PersonalFileHandler) ownerID(c *gin.Context) (uuid.UUID, bool) {
	principal, err := response.GetPrincipal(c)
	if err != nil {
		response.ResponseError(c, err)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(principal.SubjectID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return uuid.Nil, false
	}

	return id, true
}

func (h *PersonalFileHandler) Create(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	var input dto.CreateFileInput
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

	meta, err := h.service.Create(c.Request.Context(), ownerID, input, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meta)
}

func (h *PersonalFileHandler) List(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	files, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

func (h *PersonalFileHandler) Download(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	file, err := h.service.GetFile(c.Request.Context(), ownerID, id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}
