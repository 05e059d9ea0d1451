package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// AttachmentHandler handles file attachment requests
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// GeneratePresignedURL godoc
// @Summary      업로드 URL 발급
// @Description  클라이언트가 오브젝트 스토리지에 직접 업로드할 수 있는 서명된 URL을 발급합니다
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        request body dto.PresignedURLRequest true "업로드 URL 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.PresignedURLResponse} "발급 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /attachments/presigned-url [post]
func (h *AttachmentHandler) GeneratePresignedURL(c *gin.Context) {
	var req dto.PresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	result, err := h.attachmentService.GeneratePresignedURL(c.Request.Context(), &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// SaveMetadata godoc
// @Summary      업로드 완료 메타데이터 저장
// @Description  업로드가 끝난 파일을 TEMP 첨부파일로 등록합니다. 확정 전까지는 만료 후 정리 대상입니다
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveAttachmentMetadataRequest true "메타데이터 저장 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.AttachmentResponse} "저장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /attachments/metadata [post]
func (h *AttachmentHandler) SaveMetadata(c *gin.Context) {
	var req dto.SaveAttachmentMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	attachment, err := h.attachmentService.SaveMetadata(c.Request.Context(), &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, attachment)
}

// GetAttachmentsByEntity godoc
// @Summary      첨부파일 목록 조회
// @Description  특정 엔티티(TASK, MEETING, PROJECT)에 연결된 첨부파일을 조회합니다
// @Tags         attachments
// @Produce      json
// @Param        entityType query string true "엔티티 유형 (TASK, MEETING, PROJECT)"
// @Param        entityId query string true "Entity ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.AttachmentResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /attachments [get]
func (h *AttachmentHandler) GetAttachmentsByEntity(c *gin.Context) {
	entityType := domain.EntityType(c.Query("entityType"))
	switch entityType {
	case domain.EntityTypeTask, domain.EntityTypeMeeting, domain.EntityTypeProject:
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entityType")
		return
	}

	entityID, err := uuidFromQuery(c, "entityId")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid entityId")
		return
	}

	attachments, err := h.attachmentService.GetAttachmentsByEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, attachments)
}

// GetDownloadURL godoc
// @Summary      다운로드 URL 발급
// @Description  첨부파일의 시간제한 다운로드 URL을 발급합니다
// @Tags         attachments
// @Produce      json
// @Param        attachmentId path string true "Attachment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DownloadURLResponse} "발급 성공"
// @Failure      404 {object} response.ErrorResponse "첨부파일을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /attachments/{attachmentId}/download-url [get]
func (h *AttachmentHandler) GetDownloadURL(c *gin.Context) {
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	result, err := h.attachmentService.GetDownloadURL(c.Request.Context(), attachmentID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// DeleteAttachment godoc
// @Summary      첨부파일 삭제
// @Description  첨부파일을 스토리지와 DB에서 삭제합니다. 업로더 본인만 가능합니다
// @Tags         attachments
// @Produce      json
// @Param        attachmentId path string true "Attachment ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      404 {object} response.ErrorResponse "첨부파일을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /attachments/{attachmentId} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseUUIDParam(c, "attachmentId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), attachmentID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"attachmentId": attachmentID.String()})
}
