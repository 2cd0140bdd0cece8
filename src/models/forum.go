package models

// ForumPost โพสต์ในฟอรั่ม append-only ไม่มีแก้ไข/ลบ
type ForumPost struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Author    string `bson:"author" json:"author"`
	Content   string `bson:"content" json:"content"`
	StudentID string `bson:"studentId" json:"studentId"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"` // unix millis
}
