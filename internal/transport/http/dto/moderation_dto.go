package dto

type ModerationQueueResponse struct {
	Posts    []PostResponse    `json:"posts"`
	Comments []CommentResponse `json:"comments"`
}

type ApproveResponse struct {
	OK bool `json:"ok"`
}
