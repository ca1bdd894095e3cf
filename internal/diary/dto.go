package diary

import "github.com/harulog/haru-diary/go-api-server/internal/model"

// DiaryForm carries the mutable content fields of a diary entry.
// Every field is optional; on update a zero value means "keep the
// stored value".
type DiaryForm struct {
	DiaryTitle   string
	DiaryContent string
	DiaryCate    string
	DiaryEmotion string
	AccessLevel  string
	CateNum      int
	BoardID      uint
}

type DiaryResponse struct {
	Message string       `json:"message"`
	Data    *model.Diary `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WeeklyDiaryItem adds the joined board name for the weekly listing.
type WeeklyDiaryItem struct {
	model.Diary
	BoardName string `json:"board_name"`
}

// ListQuery is the shared paging/filter shape of the listing endpoints.
type ListQuery struct {
	Page    int
	Limit   int
	BoardID uint
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
