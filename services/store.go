package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ahsin6/Mood-Tracker/models"
)

// SheetRows 表格行读写接口，MoodStore 只依赖这两个操作
type SheetRows interface {
	AppendRow(ctx context.Context, handle *models.SpreadsheetHandle, fields []interface{}) error
	ReadAllRows(ctx context.Context, handle *models.SpreadsheetHandle) ([]map[string]string, error)
}

// MoodStore 心情存储，固定三列结构（Timestamp, Mood, Note）
// 表格句柄在启动时解析一次后注入，不做按名称的重复查找
type MoodStore struct {
	sheet  SheetRows
	handle *models.SpreadsheetHandle
}

func NewMoodStore(sheet SheetRows, handle *models.SpreadsheetHandle) *MoodStore {
	return &MoodStore{
		sheet:  sheet,
		handle: handle,
	}
}

// Handle 返回注入的表格句柄
func (s *MoodStore) Handle() *models.SpreadsheetHandle {
	return s.handle
}

// Log 记录一条心情，打上当前时间戳后追加到表格
// 不校验标签是否属于目录，任意字符串都接受
func (s *MoodStore) Log(ctx context.Context, moodTag, note string) error {
	timestamp := time.Now().Format(models.TimestampLayout)
	if err := s.sheet.AppendRow(ctx, s.handle, []interface{}{timestamp, moodTag, note}); err != nil {
		return fmt.Errorf("记录心情失败: %w", err)
	}
	return nil
}

// LoadAll 读取全部心情记录，按存储顺序返回（最早的在前）
// 读取失败时返回空序列和错误，调用方记录日志后按空数据降级展示
func (s *MoodStore) LoadAll(ctx context.Context) ([]models.MoodEntry, error) {
	records, err := s.sheet.ReadAllRows(ctx, s.handle)
	if err != nil {
		return nil, fmt.Errorf("读取心情数据失败: %w", err)
	}

	entries := make([]models.MoodEntry, 0, len(records))
	for _, record := range records {
		timestamp, err := time.ParseInLocation(models.TimestampLayout, record["Timestamp"], time.Local)
		if err != nil {
			// 跳过时间戳无法解析的行
			continue
		}
		entries = append(entries, models.MoodEntry{
			Timestamp: timestamp,
			Date:      timestamp.Format(models.DateLayout),
			Mood:      record["Mood"],
			Note:      record["Note"],
		})
	}
	return entries, nil
}
