package models

import "time"

const (
	RoleStudent   = "student"
	RoleCounselor = "counselor"
)

// User คือ credential ของระบบ, _id คือ session key (uid) ที่ออกตอนสมัคร
type User struct {
	ID        string    `bson:"_id" json:"uid"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password,omitempty" json:"-"` // bcrypt hash, ไม่ส่งกลับ
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
