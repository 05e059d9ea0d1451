package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// GroupHandler handles task group requests
type GroupHandler struct {
	groupService service.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// GetGroups godoc
// @Summary      그룹 목록 조회
// @Description  Project의 그룹(스윔레인)을 표시 순서대로 조회합니다
// @Tags         groups
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.GroupResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	groups, err := h.groupService.GetGroups(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary      그룹 추가
// @Description  Project에 새 그룹을 추가합니다. 그룹 이름은 프로젝트 내에서 유일해야 합니다
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateGroupRequest true "그룹 추가 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.GroupResponse} "추가 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 존재하는 그룹"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), projectID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, group)
}

// DeleteGroup godoc
// @Summary      그룹 삭제
// @Description  그룹을 삭제합니다. 소속 업무는 남은 그룹 중 표시 순서가 가장 빠른 그룹으로 이동합니다
// @Tags         groups
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        groupId path string true "Group ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "삭제 성공"
// @Failure      400 {object} response.ErrorResponse "마지막 그룹은 삭제 불가"
// @Failure      404 {object} response.ErrorResponse "그룹을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/groups/{groupId} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	groupID, ok := parseUUIDParam(c, "groupId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), projectID, groupID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"groupId": groupID.String()})
}
