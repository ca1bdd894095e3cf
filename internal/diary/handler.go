package diary

import (
	"strconv"

	sharedContext "github.com/harulog/haru-diary/go-api-server/internal/shared/context"
	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/handler"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/middleware"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/upload"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 15
)

type DiaryHandler struct {
	diaryService *DiaryService
	storage      upload.Storage
}

func NewDiaryHandler(diaryService *DiaryService, storage upload.Storage) *DiaryHandler {
	return &DiaryHandler{
		diaryService: diaryService,
		storage:      storage,
	}
}

func (h *DiaryHandler) Get(c *gin.Context) {
	signID, ok := sharedContext.RequireSignID(c)
	if !ok {
		return
	}
	diaryID, ok := requireDiaryID(c)
	if !ok {
		return
	}

	diary, err := h.diaryService.Get(c.Request.Context(), signID, diaryID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, diary)
}

func (h *DiaryHandler) Create(c *gin.Context) {
	signID, ok := sharedContext.RequireSignID(c)
	if !ok {
		return
	}

	form := bindDiaryForm(c)
	postPhoto, ok := h.savePostPhoto(c)
	if !ok {
		return
	}

	created, err := h.diaryService.Create(c.Request.Context(), signID, form, postPhoto)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	middleware.TrackDiaryOperation("create")
	c.JSON(201, DiaryResponse{
		Message: "Diary created successfully",
		Data:    created,
	})
}

func (h *DiaryHandler) Update(c *gin.Context) {
	signID, ok := sharedContext.RequireSignID(c)
	if !ok {
		return
	}
	diaryID, ok := requireDiaryID(c)
	if !ok {
		return
	}

	form := bindDiaryForm(c)
	postPhoto, ok := h.savePostPhoto(c)
	if !ok {
		return
	}

	updated, err := h.diaryService.Update(c.Request.Context(), signID, diaryID, form, postPhoto)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	middleware.TrackDiaryOperation("update")
	c.JSON(200, DiaryResponse{
		Message: "Diary updated successfully",
		Data:    updated,
	})
}

func (h *DiaryHandler) Delete(c *gin.Context) {
	signID, ok := sharedContext.RequireSignID(c)
	if !ok {
		return
	}
	diaryID, ok := requireDiaryID(c)
	if !ok {
		return
	}

	err := h.diaryService.Delete(c.Request.Context(), signID, diaryID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	middleware.TrackDiaryOperation("delete")
	c.JSON(200, MessageResponse{Message: "Diary deleted successfully"})
}

// ListRecent is board-wide: it is not scoped to the caller.
func (h *DiaryHandler) ListRecent(c *gin.Context) {
	list, err := h.diaryService.ListRecent(c.Request.Context(), bindListQuery(c))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, list)
}

func (h *DiaryHandler) ListWeeklyViews(c *gin.Context) {
	list, err := h.diaryService.ListWeeklyViews(c.Request.Context(), bindListQuery(c))
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, list)
}

func (h *DiaryHandler) CountView(c *gin.Context) {
	diaryID, ok := requireDiaryID(c)
	if !ok {
		return
	}

	err := h.diaryService.CountView(c.Request.Context(), diaryID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	middleware.TrackDiaryOperation("view")
	c.JSON(200, MessageResponse{Message: "View counted"})
}

// requireDiaryID parses the diary_id path parameter. A non-numeric id
// gets the same 404 as a missing diary.
func requireDiaryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("diary_id"), 10, 32)
	if err != nil || id == 0 {
		handler.RespondError(c, ErrDiaryNotFound, diaryNotFoundResponse)
		return 0, false
	}
	return uint(id), true
}

// bindDiaryForm reads the multipart/form fields. Absent or malformed
// values degrade to zero values instead of erroring; the service layer
// decides what a zero value means per operation.
func bindDiaryForm(c *gin.Context) *DiaryForm {
	return &DiaryForm{
		DiaryTitle:   c.PostForm("diary_title"),
		DiaryContent: c.PostForm("diary_content"),
		DiaryCate:    c.PostForm("diary_cate"),
		DiaryEmotion: c.PostForm("diary_emotion"),
		AccessLevel:  c.PostForm("access_level"),
		CateNum:      formInt(c, "cate_num"),
		BoardID:      uint(formInt(c, "board_id")),
	}
}

// bindListQuery coerces page/limit explicitly: non-numeric or
// non-positive values fall back to the defaults instead of producing a
// broken offset.
func bindListQuery(c *gin.Context) ListQuery {
	q := ListQuery{Page: defaultPage, Limit: defaultLimit}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}
	if boardID, err := strconv.ParseUint(c.Query("board_id"), 10, 32); err == nil {
		q.BoardID = uint(boardID)
	}

	return q
}

func formInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.PostForm(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// savePostPhoto stores the uploaded post_photo file if the request has
// one. Returns (nil, true) when no file was attached.
func (h *DiaryHandler) savePostPhoto(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("post_photo")
	if err != nil {
		// 파일이 없는 요청 (http.ErrMissingFile 포함)
		return nil, true
	}

	path, err := h.storage.Save(c.Request.Context(), file)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return nil, false
	}
	return &path, true
}
