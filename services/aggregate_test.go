package services

import (
	"testing"
	"time"

	"github.com/Ahsin6/Mood-Tracker/models"
)

func entryAt(t *testing.T, stamp, mood, note string) models.MoodEntry {
	t.Helper()
	ts, err := time.ParseInLocation(models.TimestampLayout, stamp, time.Local)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", stamp, err)
	}
	return models.MoodEntry{
		Timestamp: ts,
		Date:      ts.Format(models.DateLayout),
		Mood:      mood,
		Note:      note,
	}
}

func TestTallyCountsPerDate(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2024-01-01 10:00:00", "happy", "feeling good"),
		entryAt(t, "2024-01-01 10:05:00", "sad", ""),
		entryAt(t, "2024-01-02 09:00:00", "happy", "next day"),
	}

	counts, order := Tally(entries, "2024-01-01")
	if len(counts) != 2 || counts["happy"] != 1 || counts["sad"] != 1 {
		t.Fatalf("unexpected tally: %v", counts)
	}
	if len(order) != 2 || order[0] != "happy" || order[1] != "sad" {
		t.Fatalf("expected first-seen order [happy sad], got %v", order)
	}

	// 合计应等于该日期的记录数
	total := 0
	for _, n := range counts {
		total += n
	}
	matched := 0
	for _, e := range entries {
		if e.Date == "2024-01-01" {
			matched++
		}
	}
	if total != matched {
		t.Fatalf("tally sums to %d, want %d", total, matched)
	}
}

func TestTallyEmptyDate(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2024-01-01 10:00:00", "happy", ""),
	}
	counts, order := Tally(entries, "2024-03-15")
	if len(counts) != 0 {
		t.Fatalf("expected empty tally, got %v", counts)
	}
	if len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}

func TestRecentSortedDescendingWithLimit(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2024-01-01 10:00:00", "happy", "feeling good"),
		entryAt(t, "2024-01-01 10:05:00", "sad", ""),
		entryAt(t, "2024-01-02 09:00:00", "excited", "other day"),
	}

	recent := Recent(entries, "2024-01-01", 5)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Mood != "sad" || recent[1].Mood != "happy" {
		t.Fatalf("expected [sad happy], got [%s %s]", recent[0].Mood, recent[1].Mood)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Timestamp.After(recent[i-1].Timestamp) {
			t.Fatalf("recent not sorted non-increasing at index %d", i)
		}
	}
	for _, e := range recent {
		if e.Date != "2024-01-01" {
			t.Fatalf("entry outside selected date: %v", e)
		}
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	var entries []models.MoodEntry
	stamps := []string{
		"2024-01-01 08:00:00",
		"2024-01-01 09:00:00",
		"2024-01-01 10:00:00",
		"2024-01-01 11:00:00",
		"2024-01-01 12:00:00",
		"2024-01-01 13:00:00",
		"2024-01-01 14:00:00",
	}
	for _, s := range stamps {
		entries = append(entries, entryAt(t, s, "neutral", ""))
	}

	recent := Recent(entries, "2024-01-01", 5)
	if len(recent) != 5 {
		t.Fatalf("expected limit of 5, got %d", len(recent))
	}
	if recent[0].Timestamp.Format(models.TimestampLayout) != "2024-01-01 14:00:00" {
		t.Fatalf("expected newest entry first, got %v", recent[0].Timestamp)
	}
}

func TestRecentEmptyDate(t *testing.T) {
	entries := []models.MoodEntry{
		entryAt(t, "2024-01-01 10:00:00", "happy", ""),
	}
	if got := Recent(entries, "2024-03-15", 5); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func TestDateBounds(t *testing.T) {
	minDate, maxDate := DateBounds(nil)
	if minDate != "" || maxDate != "" {
		t.Fatalf("expected empty bounds for no data, got %q %q", minDate, maxDate)
	}

	entries := []models.MoodEntry{
		entryAt(t, "2024-01-05 10:00:00", "happy", ""),
		entryAt(t, "2024-01-01 10:00:00", "sad", ""),
		entryAt(t, "2024-01-03 10:00:00", "neutral", ""),
	}
	minDate, maxDate = DateBounds(entries)
	if minDate != "2024-01-01" || maxDate != "2024-01-05" {
		t.Fatalf("unexpected bounds: %q %q", minDate, maxDate)
	}
}
