package models

import "fmt"

// SpreadsheetHandle 标识唯一的后端表格及其第一个工作表
type SpreadsheetHandle struct {
	ID         string
	SheetTitle string
	Created    bool // 本次启动时新建
}

// URL 返回表格的访问链接
func (h *SpreadsheetHandle) URL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", h.ID)
}
