package models

// LogMoodRequest 记录心情请求结构体
type LogMoodRequest struct {
	Mood string `json:"mood" binding:"required"`
	Note string `json:"note"` // 可以为空，存储为空字符串
}
