package model

// User represents an account in the system.
// sign_id is the login identity carried in JWT claims; every
// owner-scoped diary query filters by it.
type User struct {
	// Primary key - Oracle IDENTITY (auto-increment)
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Core fields
	SignID      string `gorm:"column:sign_id;type:VARCHAR2(50);not null;uniqueIndex:idx_user_sign_id" json:"sign_id"` // 로그인 아이디 (unique)
	Nickname    string `gorm:"column:nickname;type:VARCHAR2(100);not null" json:"nickname"`                           // 닉네임
	Email       string `gorm:"column:email;type:VARCHAR2(255)" json:"email,omitempty"`                                // 이메일 (optional)
	PhoneNumber string `gorm:"column:phone_number;type:VARCHAR2(100)" json:"-"`                                       // 핸드폰 번호 (optional)
	Password    string `gorm:"column:password;type:VARCHAR2(60);not null" json:"-"`                                   // 암호화된 비밀번호

	BaseEntity
}

// TableName specifies the table name for User
func (*User) TableName() string {
	return "users"
}

// NewUser creates a new User instance
// Note: password must already be hashed (handled in service layer)
func NewUser(signID, nickname, email, phoneNumber, password string) *User {
	return &User{
		SignID:      signID,
		Nickname:    nickname,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    password,
	}
}
