package diary_test

import (
	"net/http"
	neturl "net/url"
	"strconv"
	"testing"
	"time"

	"github.com/harulog/haru-diary/go-api-server/internal/diary"
	"github.com/harulog/haru-diary/go-api-server/internal/model"
	sharedContext "github.com/harulog/haru-diary/go-api-server/internal/shared/context"
	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testAuthHeader = "X-Test-Sign-ID"

// testAuth stands in for the JWT middleware: it copies the test
// identity header onto the context the way the middleware does after
// validating a token
func testAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if signID := c.GetHeader(testAuthHeader); signID != "" {
			c.Set(sharedContext.SignIDKey, signID)
		}
		c.Next()
	}
}

func asUser(signID string) map[string]string {
	return map[string]string{testAuthHeader: signID}
}

// setupTestEnvironment wires the diary handler against an in-memory
// database with the production route shape
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	diaryRepository := diary.NewDiaryRepository()
	diaryService := diary.NewDiaryService(db, diaryRepository)
	diaryHandler := diary.NewDiaryHandler(diaryService, testutil.NewMockStorage())

	router := testutil.SetupTestRouter()
	router.Use(testAuth())

	diaryV1 := router.Group("/api/v1/diaries")
	{
		diaryV1.GET("", diaryHandler.ListRecent)
		diaryV1.GET("/weekly", diaryHandler.ListWeeklyViews)
		diaryV1.POST("", diaryHandler.Create)
		diaryV1.GET("/:diary_id", diaryHandler.Get)
		diaryV1.PUT("/:diary_id", diaryHandler.Update)
		diaryV1.DELETE("/:diary_id", diaryHandler.Delete)
		diaryV1.POST("/:diary_id/view", diaryHandler.CountView)
	}

	return router, db
}

func createDiary(t *testing.T, router *gin.Engine, signID string, fields neturl.Values) *model.Diary {
	t.Helper()

	recorder := testutil.ExecuteFormRequest(t, router, http.MethodPost, "/api/v1/diaries", fields, asUser(signID))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response diary.DiaryResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotNil(t, response.Data)
	return response.Data
}

func TestCreateAndGet_OwnerScope(t *testing.T) {
	// Given: u1 creates a diary
	router, _ := setupTestEnvironment(t)

	created := createDiary(t, router, "u1", neturl.Values{
		"diary_title":   {"A"},
		"diary_content": {"B"},
	})

	assert.Equal(t, "u1", created.SignID)
	assert.Equal(t, "A", created.DiaryTitle)
	assert.Equal(t, "B", created.DiaryContent)
	assert.Nil(t, created.PostPhoto)
	assert.NotZero(t, created.DiaryID)
	assert.False(t, created.CreatedAt.IsZero())

	url := "/api/v1/diaries/" + itoa(created.DiaryID)

	// When: u2 requests u1's diary
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet, url, nil, asUser("u2"))

	// Then: Indistinguishable from a missing diary
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "Diary not found", errorResponse.Message)

	// When: u1 requests their own diary
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodGet, url, nil, asUser("u1"))

	// Then: Full record is returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var fetched model.Diary
	testutil.ParseResponse(t, recorder, &fetched)
	assert.Equal(t, created.DiaryID, fetched.DiaryID)
	assert.Equal(t, "A", fetched.DiaryTitle)
	assert.Equal(t, "B", fetched.DiaryContent)
}

func TestGet_UnknownID(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	for _, id := range []string{"12345", "abc"} {
		recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet, "/api/v1/diaries/"+id, nil, asUser("u1"))
		assert.Equal(t, http.StatusNotFound, recorder.Code, "id=%s", id)
	}
}

func TestCreate_WithPhoto(t *testing.T) {
	// Given
	router, _ := setupTestEnvironment(t)

	// When: Create with an attached post_photo file
	recorder := testutil.ExecuteMultipartRequest(t, router, http.MethodPost, "/api/v1/diaries",
		map[string]string{
			"diary_title":   "사진 일기",
			"diary_content": "오늘의 사진",
			"board_id":      "1",
			"cate_num":      "3",
		},
		"post_photo", "photo.jpg", []byte("fake-image-bytes"), asUser("u1"))

	// Then: Stored path lands in post_photo
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response diary.DiaryResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotNil(t, response.Data)
	require.NotNil(t, response.Data.PostPhoto)
	assert.Equal(t, "uploads/mock-photo.jpg", *response.Data.PostPhoto)
	assert.Equal(t, uint(1), response.Data.BoardID)
	assert.Equal(t, 3, response.Data.CateNum)
}

func TestUpdate_EmptyFieldsKeepStoredValues(t *testing.T) {
	// Given: A diary with all content fields set
	router, _ := setupTestEnvironment(t)

	created := createDiary(t, router, "u1", neturl.Values{
		"diary_title":   {"원래 제목"},
		"diary_content": {"원래 내용"},
		"diary_cate":    {"일상"},
		"diary_emotion": {"기쁨"},
		"access_level":  {"public"},
		"cate_num":      {"2"},
	})

	url := "/api/v1/diaries/" + itoa(created.DiaryID)

	// When: Update sends a new content but empty title and zero cate_num
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodPut, url, neturl.Values{
		"diary_title":   {""},
		"diary_content": {"바뀐 내용"},
		"cate_num":      {"0"},
	}, asUser("u1"))

	// Then: Empty/zero fields keep their stored values
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response diary.DiaryResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "원래 제목", response.Data.DiaryTitle)
	assert.Equal(t, "바뀐 내용", response.Data.DiaryContent)
	assert.Equal(t, "일상", response.Data.DiaryCate)
	assert.Equal(t, "기쁨", response.Data.DiaryEmotion)
	assert.Equal(t, "public", response.Data.AccessLevel)
	assert.Equal(t, 2, response.Data.CateNum)
	assert.Nil(t, response.Data.PostPhoto)
}

func TestUpdate_ReplacePhotoOnlyWithNewFile(t *testing.T) {
	// Given: A diary created with a photo
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteMultipartRequest(t, router, http.MethodPost, "/api/v1/diaries",
		map[string]string{"diary_title": "before"},
		"post_photo", "before.jpg", []byte("img"), asUser("u1"))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created diary.DiaryResponse
	testutil.ParseResponse(t, recorder, &created)
	require.NotNil(t, created.Data.PostPhoto)

	url := "/api/v1/diaries/" + itoa(created.Data.DiaryID)

	// When: Update without a file
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodPut, url, neturl.Values{
		"diary_title": {"after"},
	}, asUser("u1"))

	// Then: post_photo is retained
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated diary.DiaryResponse
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, "after", updated.Data.DiaryTitle)
	require.NotNil(t, updated.Data.PostPhoto)
	assert.Equal(t, *created.Data.PostPhoto, *updated.Data.PostPhoto)
}

func TestUpdate_NotOwned(t *testing.T) {
	// Given: u1's diary
	router, _ := setupTestEnvironment(t)

	created := createDiary(t, router, "u1", neturl.Values{
		"diary_title": {"mine"},
	})

	url := "/api/v1/diaries/" + itoa(created.DiaryID)

	// When: u2 tries to update it
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodPut, url, neturl.Values{
		"diary_title": {"stolen"},
	}, asUser("u2"))

	// Then: 404, and nothing changed for u1
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = testutil.ExecuteFormRequest(t, router, http.MethodGet, url, nil, asUser("u1"))
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched model.Diary
	testutil.ParseResponse(t, recorder, &fetched)
	assert.Equal(t, "mine", fetched.DiaryTitle)
}

func TestDelete_OwnerScopeAndIdempotence(t *testing.T) {
	// Given: u1's diary
	router, _ := setupTestEnvironment(t)

	created := createDiary(t, router, "u1", neturl.Values{
		"diary_title": {"to delete"},
	})

	url := "/api/v1/diaries/" + itoa(created.DiaryID)

	// When: u2 tries to delete it
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodDelete, url, nil, asUser("u2"))

	// Then: 404 and the record survives
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// When: u1 deletes it
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodDelete, url, nil, asUser("u1"))

	// Then: Success with the fixed message
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response diary.MessageResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "Diary deleted successfully", response.Message)

	// When: u1 deletes it again
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodDelete, url, nil, asUser("u1"))

	// Then: Never a second success
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListRecent_BoardFilterOrderAndPaging(t *testing.T) {
	// Given: Five diaries across two boards with staggered creation times
	router, db := setupTestEnvironment(t)

	base := time.Now().Add(-time.Hour)
	seed := []struct {
		title   string
		boardID uint
		offset  time.Duration
	}{
		{"b1-old", 1, 0},
		{"b1-mid", 1, time.Minute},
		{"b1-new", 1, 2 * time.Minute},
		{"b2-old", 2, 30 * time.Second},
		{"b2-new", 2, 90 * time.Second},
	}
	for _, s := range seed {
		d := &model.Diary{
			SignID:     "writer",
			DiaryTitle: s.title,
			BoardID:    s.boardID,
		}
		d.CreatedAt = base.Add(s.offset)
		d.UpdatedAt = d.CreatedAt
		require.NoError(t, db.Create(d).Error)
	}

	// When: First page of board 1, two per page (reader is another user)
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet,
		"/api/v1/diaries?board_id=1&page=1&limit=2", nil, asUser("reader"))

	// Then: Only board 1 records, newest first, exactly limit records
	require.Equal(t, http.StatusOK, recorder.Code)

	var page1 []model.Diary
	testutil.ParseResponse(t, recorder, &page1)
	require.Len(t, page1, 2)
	assert.Equal(t, "b1-new", page1[0].DiaryTitle)
	assert.Equal(t, "b1-mid", page1[1].DiaryTitle)
	assert.Equal(t, "writer", page1[0].SignID)

	// When: Second page
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodGet,
		"/api/v1/diaries?board_id=1&page=2&limit=2", nil, asUser("reader"))

	// Then: The remaining record
	require.Equal(t, http.StatusOK, recorder.Code)

	var page2 []model.Diary
	testutil.ParseResponse(t, recorder, &page2)
	require.Len(t, page2, 1)
	assert.Equal(t, "b1-old", page2[0].DiaryTitle)
}

func TestListRecent_InvalidPagingFallsBackToDefaults(t *testing.T) {
	// Given: One diary
	router, _ := setupTestEnvironment(t)
	createDiary(t, router, "u1", neturl.Values{"diary_title": {"only"}})

	// When: page/limit are not numbers
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet,
		"/api/v1/diaries?page=abc&limit=xyz", nil, asUser("u1"))

	// Then: Defaults apply instead of a broken offset
	require.Equal(t, http.StatusOK, recorder.Code)

	var list []model.Diary
	testutil.ParseResponse(t, recorder, &list)
	assert.Len(t, list, 1)
}

func TestListWeeklyViews_WindowAndOrder(t *testing.T) {
	// Given: A board, two diaries this week, one from last week
	router, db := setupTestEnvironment(t)

	board := &model.Board{BoardName: "일상"}
	require.NoError(t, db.Create(board).Error)

	now := time.Now()
	seed := []struct {
		title     string
		viewCount int
		createdAt time.Time
	}{
		{"this-week-low", 5, now},
		{"this-week-high", 10, now},
		{"last-week", 100, now.AddDate(0, 0, -8)},
	}
	for _, s := range seed {
		d := &model.Diary{
			SignID:     "writer",
			DiaryTitle: s.title,
			BoardID:    board.BoardID,
			ViewCount:  s.viewCount,
		}
		d.CreatedAt = s.createdAt
		d.UpdatedAt = s.createdAt
		require.NoError(t, db.Create(d).Error)
	}

	// When: Weekly listing is requested
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet,
		"/api/v1/diaries/weekly", nil, asUser("reader"))

	// Then: Only this week's records, ordered by view count descending
	require.Equal(t, http.StatusOK, recorder.Code)

	var list []diary.WeeklyDiaryItem
	testutil.ParseResponse(t, recorder, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "this-week-high", list[0].DiaryTitle)
	assert.Equal(t, "this-week-low", list[1].DiaryTitle)
	assert.Equal(t, "일상", list[0].BoardName)
	assert.Equal(t, "writer", list[0].SignID)
}

func TestCountView(t *testing.T) {
	// Given: A diary
	router, _ := setupTestEnvironment(t)

	created := createDiary(t, router, "u1", neturl.Values{"diary_title": {"views"}})
	url := "/api/v1/diaries/" + itoa(created.DiaryID)

	// When: The view endpoint is hit twice (by anyone, not just the owner)
	for i := 0; i < 2; i++ {
		recorder := testutil.ExecuteFormRequest(t, router, http.MethodPost, url+"/view", nil, asUser("someone"))
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	// Then: view_count reflects both hits
	recorder := testutil.ExecuteFormRequest(t, router, http.MethodGet, url, nil, asUser("u1"))
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched model.Diary
	testutil.ParseResponse(t, recorder, &fetched)
	assert.Equal(t, 2, fetched.ViewCount)

	// And: Counting a missing diary is a 404
	recorder = testutil.ExecuteFormRequest(t, router, http.MethodPost, "/api/v1/diaries/99999/view", nil, asUser("someone"))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
