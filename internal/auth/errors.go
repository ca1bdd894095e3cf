package auth

import (
	"net/http"

	sharedError "github.com/harulog/haru-diary/go-api-server/internal/shared/error"
)

const (
	incorrectSignIDPassword = "INCORRECT_SIGNID_PASSWORD" // errInfo
)

var (
	ErrIncorrectSignIDPassword = sharedError.NewDomainError(incorrectSignIDPassword)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectSignIDPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})
}
