package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/dto"
	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary      회원가입
// @Description  새 계정을 생성합니다. 생성된 계정은 관리자 승인 전까지 PENDING 상태입니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "회원가입 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "회원가입 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 사용 중인 아이디"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      로그인
// @Description  아이디와 비밀번호로 로그인하고 JWT 토큰을 발급받습니다
// @Description  승인 대기 중이거나 거절된 계정은 로그인할 수 없습니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "로그인 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.LoginResponse} "로그인 성공"
// @Failure      401 {object} response.ErrorResponse "아이디 또는 비밀번호 불일치"
// @Failure      403 {object} response.ErrorResponse "승인되지 않은 계정"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Me godoc
// @Summary      내 정보 조회
// @Description  토큰의 사용자 정보를 조회합니다
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// Logout godoc
// @Summary      로그아웃
// @Description  로그아웃합니다. 토큰은 상태가 없으므로 클라이언트가 폐기하면 됩니다
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=map[string]string} "로그아웃 성공"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}
