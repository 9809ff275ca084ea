package model

// Feedback is a rating and comment left by a user.
type Feedback struct {
	ID      int64  `json:"id" db:"ID"`
	UserID  int64  `json:"userId" db:"USER_ID"`
	Message string `json:"message" db:"MESSAGE" binding:"required"`
	Star    int    `json:"star" db:"STAR" binding:"min=0,max=5"`
}

// ApplyUpdate copies the updatable fields of other onto f.
func (f *Feedback) ApplyUpdate(other *Feedback) {
	f.UserID = other.UserID
	f.Message = other.Message
	f.Star = other.Star
}
