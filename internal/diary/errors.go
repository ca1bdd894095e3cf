package diary

import (
	"net/http"

	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
)

const (
	diaryNotFound = "DIARY_NOT_FOUND" // errInfo
)

var (
	ErrDiaryNotFound = sharedError.NewDomainError(diaryNotFound)

	// 존재하지 않는 일기와 남의 일기는 같은 응답을 받는다
	diaryNotFoundResponse = sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "DIARY-001",
		Message: "Diary not found",
	}
)

func init() {
	sharedError.RegisterDomainErrorResponse(diaryNotFound, diaryNotFoundResponse)
}
