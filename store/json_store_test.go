package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestJSONStore_LoadMissingFile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "data", "gamestats.json"))
	high, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if high != 0 {
		t.Errorf("high = %d, want 0", high)
	}
}

func TestJSONStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "gamestats.json")
	s := NewJSONStore(path)
	if err := s.Save(60); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A second store on the same file simulates the next process start.
	high, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if high != 60 {
		t.Errorf("high = %d, want 60", high)
	}
}

func TestJSONStore_SaveKeepsHistory(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "gamestats.json"))
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Record(GameRecord{Session: "a", Score: 30, StartTime: start, EndTime: start.Add(time.Minute)}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Save(30); err != nil {
		t.Fatalf("Save: %v", err)
	}

	history, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Session != "a" || history[0].Score != 30 {
		t.Fatalf("history = %+v", history)
	}
	if history[0].Duration() != time.Minute {
		t.Errorf("duration = %v, want 1m", history[0].Duration())
	}
}

func TestJSONStore_HistoryIsBounded(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "gamestats.json"))
	for i := 0; i < MaxHistory+5; i++ {
		if err := s.Record(GameRecord{Score: i}); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	history, err := s.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != MaxHistory {
		t.Fatalf("len(history) = %d, want %d", len(history), MaxHistory)
	}
	if history[0].Score != 5 {
		t.Errorf("oldest kept score = %d, want 5", history[0].Score)
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamestats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewJSONStore(path)
	if _, err := s.Load(); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Load error = %v, want ErrCorrupt", err)
	}

	// Saving replaces the unreadable file.
	if err := s.Save(10); err != nil {
		t.Fatalf("Save over corrupt file: %v", err)
	}
	high, err := s.Load()
	if err != nil || high != 10 {
		t.Errorf("Load = %d, %v; want 10, nil", high, err)
	}
}

func TestJSONStore_RejectsNegative(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "gamestats.json"))
	if err := s.Save(-1); err == nil {
		t.Error("expected error for negative high score")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(50)
	high, _ := m.Load()
	if high != 50 {
		t.Errorf("high = %d, want 50", high)
	}
	m.Save(60)
	if high, _ = m.Load(); high != 60 {
		t.Errorf("high = %d, want 60", high)
	}
	m.Record(GameRecord{Score: 60})
	if h := m.History(); len(h) != 1 || h[0].Score != 60 {
		t.Errorf("history = %+v", h)
	}
}
