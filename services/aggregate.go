package services

import (
	"sort"

	"github.com/Ahsin6/Mood-Tracker/models"
)

// Tally 统计指定日期各心情的出现次数，同时返回首次出现顺序
// 纯函数，不依赖任何外部状态
func Tally(entries []models.MoodEntry, date string) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}
	return counts, order
}

// Recent 返回指定日期最近的记录，按时间戳降序，最多 limit 条
func Recent(entries []models.MoodEntry, date string, limit int) []models.MoodEntry {
	var matched []models.MoodEntry
	for _, e := range entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// DateBounds 返回记录中的最小与最大日期，空数据时返回空字符串
func DateBounds(entries []models.MoodEntry) (minDate, maxDate string) {
	for _, e := range entries {
		if minDate == "" || e.Date < minDate {
			minDate = e.Date
		}
		if maxDate == "" || e.Date > maxDate {
			maxDate = e.Date
		}
	}
	return minDate, maxDate
}
