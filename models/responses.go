package models

// RecentEntryResponse 最近记录响应结构体
type RecentEntryResponse struct {
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
	Time      string `json:"time"`      // HH:MM，用于表格展示
	Mood      string `json:"mood"`
	Note      string `json:"note"`
}

// DashboardResponse 看板数据响应结构体
type DashboardResponse struct {
	Date      string                `json:"date"`
	MinDate   string                `json:"minDate"`
	MaxDate   string                `json:"maxDate"`
	Tally     map[string]int        `json:"tally"`
	MoodOrder []string              `json:"moodOrder"` // 首次出现顺序，图表按此排列
	Recent    []RecentEntryResponse `json:"recent"`
	Total     int                   `json:"total"`
	SheetURL  string                `json:"sheetUrl"`
	Error     string                `json:"error,omitempty"` // 降级时的提示信息
}

// CatalogResponse 心情目录响应结构体
type CatalogResponse struct {
	Moods []MoodOption `json:"moods"`
}
