package models

import "time"

// 表格时间戳与日期格式
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// SheetHeader 表格固定表头
var SheetHeader = []string{"Timestamp", "Mood", "Note"}

// MoodEntry 心情记录模型，对应表格中的一行
type MoodEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"` // 从时间戳派生，YYYY-MM-DD
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
}

// MoodOption 心情选项，展示标签与存储标签
type MoodOption struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// MoodCatalog 固定的心情目录，进程启动时加载，不可变
var MoodCatalog = []MoodOption{
	{Label: "😊 Happy", Tag: "happy"},
	{Label: "😠 Frustrated", Tag: "frustrated"},
	{Label: "😕 Confused", Tag: "confused"},
	{Label: "🎉 Excited", Tag: "excited"},
	{Label: "😔 Sad", Tag: "sad"},
	{Label: "😐 Neutral", Tag: "neutral"},
}

// IsCatalogMood 判断标签是否属于心情目录
func IsCatalogMood(tag string) bool {
	for _, m := range MoodCatalog {
		if m.Tag == tag {
			return true
		}
	}
	return false
}
