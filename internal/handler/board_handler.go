package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-task-api/internal/response"
	"project-task-api/internal/service"
)

// BoardHandler handles board view and my-work requests
type BoardHandler struct {
	boardService  service.BoardService
	myWorkService service.MyWorkService
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService, myWorkService service.MyWorkService) *BoardHandler {
	return &BoardHandler{
		boardService:  boardService,
		myWorkService: myWorkService,
	}
}

// GetBoardView godoc
// @Summary      보드 뷰 조회
// @Description  한 그룹의 업무를 트리 형태의 행 목록으로 조회합니다
// @Description  status/priority/assignee 필터나 sort가 지정되면 트리 대신 평탄화된 목록을 반환합니다
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        group query string true "그룹 이름"
// @Param        status query string false "상태 필터"
// @Param        priority query string false "우선순위 필터"
// @Param        assignee query string false "담당자 필터"
// @Param        sort query string false "정렬 컬럼 (status, priority, endDate)"
// @Param        sortDir query string false "정렬 방향 (asc, desc). 기본값 asc"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardViewResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/board [get]
func (h *BoardHandler) GetBoardView(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	groupName := c.Query("group")
	if groupName == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "group query parameter is required")
		return
	}

	filter := service.BoardFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
	}
	sortBy := service.BoardSort(c.Query("sort"))
	switch sortBy {
	case service.BoardSortNone, service.BoardSortStatus, service.BoardSortPriority, service.BoardSortEndDate:
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sort column")
		return
	}
	sortDir := service.BoardSortDir(c.Query("sortDir"))
	switch sortDir {
	case "", service.BoardSortAsc, service.BoardSortDesc:
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid sort direction")
		return
	}

	view, err := h.boardService.GetBoardView(c.Request.Context(), projectID, userID, groupName, filter, sortBy, sortDir)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, view)
}

// GetGroupSummaries godoc
// @Summary      그룹별 업무 요약 조회
// @Description  Project의 업무를 그룹별로 분할하여 건수와 예산 합계를 함께 반환합니다
// @Description  선언되지 않은 그룹 이름을 가진 업무는 어떤 그룹에도 나타나지 않습니다
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.GroupSummaryResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "권한 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/board/groups [get]
func (h *BoardHandler) GetGroupSummaries(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "projectId")
	if !ok {
		return
	}
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	summaries, err := h.boardService.GetGroupSummaries(c.Request.Context(), projectID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summaries)
}

// GetMyWork godoc
// @Summary      내 업무 조회
// @Description  사용자에게 할당된 업무를 모든 프로젝트에서 모아 마감일 기준으로 분류합니다
// @Description  버킷 순서: overdue, today, thisWeek, nextWeek, later, noDate
// @Tags         board
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.MyWorkResponse} "조회 성공"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /my-work [get]
func (h *BoardHandler) GetMyWork(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	myWork, err := h.myWorkService.GetMyWork(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, myWork)
}
