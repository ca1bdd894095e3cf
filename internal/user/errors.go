package user

import (
	"net/http"

	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
)

const (
	userAlreadyExists = "USER_ALREADY_EXISTS" // errInfo
	userNotFound      = "USER_NOT_FOUND"      // errInfo
)

var (
	ErrUserAlreadyExists = sharedError.NewDomainError(userAlreadyExists)
	ErrUserNotFound      = sharedError.NewDomainError(userNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "USER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(userAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "USER-002",
		Message: "이미 사용 중인 아이디입니다.",
	})
}
