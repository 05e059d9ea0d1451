package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// MeetingHandler handles meeting minutes requests
type MeetingHandler struct {
	meetingService service.MeetingService
}

// NewMeetingHandler creates a new MeetingHandler
func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

// CreateMeeting godoc
// @Summary      회의록 생성
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMeetingRequest true "회의록 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MeetingResponse} "생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), &req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, meeting)
}

// GetMeeting godoc
// @Summary      회의록 조회
// @Description  회의록과 음성 변환 처리 상태를 조회합니다. 클라이언트는 이 API로 처리 상태를 폴링합니다
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "회의록을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /meetings/{meetingId} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meetingID, ok := parseUUIDParam(c, "meetingId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), meetingID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// GetMeetingsByProject godoc
// @Summary      Project 회의록 목록 조회
// @Description  Project의 회의록을 날짜 역순으로 조회합니다
// @Tags         meetings
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MeetingResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/meetings [get]
func (h *MeetingHandler) GetMeetingsByProject(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	meetings, err := h.meetingService.GetMeetingsByProject(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meetings)
}

// UpdateMeeting godoc
// @Summary      회의록 수정
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Param        request body dto.UpdateMeetingRequest true "회의록 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingResponse} "수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "회의록을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /meetings/{meetingId} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	meetingID, ok := parseUUIDParam(c, "meetingId")
	if !ok {
		return
	}

	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(c.Request.Context(), meetingID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// DeleteMeeting godoc
// @Summary      회의록 삭제
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "삭제 성공"
// @Failure      404 {object} response.ErrorResponse "회의록을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /meetings/{meetingId} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	meetingID, ok := parseUUIDParam(c, "meetingId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	if err := h.meetingService.DeleteMeeting(c.Request.Context(), meetingID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"meetingId": meetingID.String()})
}

// ProcessMeeting godoc
// @Summary      회의 음성 변환 요청
// @Description  업로드된 음성 파일의 변환을 큐에 등록합니다. 상태가 QUEUED로 바뀌며 워커가 순차 처리합니다
// @Description  FAILED 상태의 회의록은 이 API를 다시 호출하여 재시도할 수 있습니다
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      202 {object} response.SuccessResponse{data=dto.MeetingResponse} "큐 등록 성공"
// @Failure      400 {object} response.ErrorResponse "음성 파일 없음"
// @Failure      409 {object} response.ErrorResponse "이미 처리 중"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /meetings/{meetingId}/process [post]
func (h *MeetingHandler) ProcessMeeting(c *gin.Context) {
	meetingID, ok := parseUUIDParam(c, "meetingId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	meeting, err := h.meetingService.EnqueueProcessing(c.Request.Context(), meetingID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, meeting)
}
