package dto

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type NotificationQuery struct {
	UnreadOnly bool `form:"unreadOnly"`
}
