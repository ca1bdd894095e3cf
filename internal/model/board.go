package model

// Board groups diaries for display. Board lifecycle is managed
// elsewhere; this service only reads board_id and board_name.
type Board struct {
	BoardID   uint   `gorm:"column:board_id;primaryKey;autoIncrement" json:"board_id"`
	BoardName string `gorm:"column:board_name;type:VARCHAR2(100);not null" json:"board_name"` // 게시판 이름

	BaseEntity
}

// TableName specifies the table name for Board
func (*Board) TableName() string {
	return "boards"
}
