package model

// Diary represents one journal entry.
//
// Ownership: sign_id references the user that created the entry.
// Get/Update/Delete must always filter by diary_id AND sign_id
// together so that another user's entry is indistinguishable from a
// missing one.
type Diary struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	DiaryID uint `gorm:"column:diary_id;primaryKey;autoIncrement" json:"diary_id"`

	// Ownership
	SignID string `gorm:"column:sign_id;type:VARCHAR2(50);not null;index:idx_diary_sign_id" json:"sign_id"`

	// Content fields
	DiaryTitle   string `gorm:"column:diary_title;type:VARCHAR2(255)" json:"diary_title"`
	DiaryContent string `gorm:"column:diary_content;type:CLOB" json:"diary_content"`
	DiaryCate    string `gorm:"column:diary_cate;type:VARCHAR2(100)" json:"diary_cate"`     // 카테고리 라벨
	DiaryEmotion string `gorm:"column:diary_emotion;type:VARCHAR2(50)" json:"diary_emotion"` // 감정 태그
	CateNum      int    `gorm:"column:cate_num" json:"cate_num"`
	AccessLevel  string `gorm:"column:access_level;type:VARCHAR2(20)" json:"access_level"`

	// Set only when the request carried a file; null otherwise
	PostPhoto *string `gorm:"column:post_photo;type:VARCHAR2(512)" json:"post_photo"`

	// Grouping (optional listing filter)
	BoardID uint `gorm:"column:board_id;index:idx_diary_board_id" json:"board_id"`

	// Incremented by the view-count endpoint only
	ViewCount int `gorm:"column:view_count;not null;default:0" json:"view_count"`

	// Display joins for listings
	User  User  `gorm:"foreignKey:SignID;references:SignID" json:"-"`
	Board Board `gorm:"foreignKey:BoardID;references:BoardID" json:"-"`

	BaseEntity
}

// TableName specifies the table name for Diary
func (*Diary) TableName() string {
	return "diaries"
}
