package models

// Like records that a user currently likes a post. It is pure existence:
// the composite primary key (PostID, Username) allows at most one like per
// (post, user) pair, and there is no independent identity or timestamp.
type Like struct {
	PostID   string `gorm:"primaryKey;size:36" json:"postId"`
	Username string `gorm:"primaryKey;size:255" json:"username"`
}

// TableName overrides the default pluralization.
func (Like) TableName() string {
	return "likes"
}
