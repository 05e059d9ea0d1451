package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// AdminHandler handles admin-only requests
type AdminHandler struct {
	adminService service.AdminService
	seedService  service.SeedService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService service.AdminService, seedService service.SeedService) *AdminHandler {
	return &AdminHandler{adminService: adminService, seedService: seedService}
}

// GetPendingUsers godoc
// @Summary      승인 대기 사용자 목록
// @Description  관리자 승인을 기다리는 사용자 목록을 조회합니다
// @Tags         admin
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/users/pending [get]
func (h *AdminHandler) GetPendingUsers(c *gin.Context) {
	users, err := h.adminService.GetPendingUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, users)
}

// DecideUser godoc
// @Summary      사용자 승인/거절
// @Description  대기 중인 사용자를 승인하거나 거절합니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body dto.ApproveUserRequest true "승인 결정 요청"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "처리 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/users/decision [post]
func (h *AdminHandler) DecideUser(c *gin.Context) {
	var req dto.ApproveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.adminService.DecideUser(c.Request.Context(), &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"id": req.Username, "action": req.Action})
}

// GetDepartments godoc
// @Summary      부서 목록 조회
// @Tags         admin
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.DepartmentResponse} "조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/departments [get]
func (h *AdminHandler) GetDepartments(c *gin.Context) {
	departments, err := h.adminService.GetDepartments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, departments)
}

// CreateDepartment godoc
// @Summary      부서 생성
// @Description  새 부서를 생성합니다. 배지 색상은 자동으로 지정됩니다
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDepartmentRequest true "부서 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.DepartmentResponse} "생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 존재하는 부서"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/departments [post]
func (h *AdminHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	department, err := h.adminService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, department)
}

// DeleteDepartment godoc
// @Summary      부서 삭제
// @Tags         admin
// @Produce      json
// @Param        departmentId path string true "Department ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Department ID"
// @Failure      404 {object} response.ErrorResponse "부서를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/departments/{departmentId} [delete]
func (h *AdminHandler) DeleteDepartment(c *gin.Context) {
	departmentID, ok := parseUUIDParam(c, "departmentId")
	if !ok {
		return
	}

	if err := h.adminService.DeleteDepartment(c.Request.Context(), departmentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"departmentId": departmentID.String()})
}

// SeedDemoData godoc
// @Summary      데모 데이터 생성
// @Description  데모용 부서, 프로젝트, 태스크, 회의록 데이터를 생성합니다. 이미 있는 부서는 건너뜁니다
// @Tags         admin
// @Produce      json
// @Success      201 {object} response.SuccessResponse{data=dto.SeedResponse} "생성 성공"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /admin/seed [post]
func (h *AdminHandler) SeedDemoData(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	result, err := h.seedService.SeedDemoData(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}
