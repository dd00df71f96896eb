package instagram

import (
	"time"
)

// Profile Graph API 用户主页信息
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
	MediaCount  int    `json:"media_count"`
}

// Media 一条帖子
type Media struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	MediaType string `json:"media_type"`
	Timestamp string `json:"timestamp"`
}

// Comment 一条评论，PostID 为所属帖子
type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"-"`
	Username    string    `json:"username"`
	Text        string    `json:"text"`
	CommentedAt time.Time `json:"-"`

	Timestamp string      `json:"timestamp"`
	From      CommentFrom `json:"from"`
}

type CommentFrom struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type mediaListResponse struct {
	Data []Media `json:"data"`
}

type commentListResponse struct {
	Data []Comment `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
