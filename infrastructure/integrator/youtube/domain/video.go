package youtubedomain

// VideoListResponse é a resposta do endpoint videos.list com part=statistics
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	ID         string     `json:"id"`
	Statistics Statistics `json:"statistics"`
}

// Statistics vem com os contadores como strings
type Statistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}
