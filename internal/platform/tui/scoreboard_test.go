package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/storage"
)

type fakeSource struct {
	all  []storage.ScoreEntry
	mine []storage.ScoreEntry
	err  error
}

func (f fakeSource) TopScores(int) ([]storage.ScoreEntry, error) {
	return f.all, f.err
}

func (f fakeSource) PlayerScores(string, int) ([]storage.ScoreEntry, error) {
	return f.mine, f.err
}

func testSource() fakeSource {
	at := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	return fakeSource{
		all: []storage.ScoreEntry{
			{ID: 1, Player: "alice", Score: 360, Outcome: "level_completed", CreatedAt: at},
			{ID: 2, Player: "bob", Score: 90, Outcome: "dead", CreatedAt: at},
		},
		mine: []storage.ScoreEntry{
			{ID: 2, Player: "bob", Score: 90, Outcome: "dead", CreatedAt: at},
		},
	}
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows(testSource().all)

	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	want := []string{"#1", "alice", "360", "won", "Mar 14 15:09"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][3] != "lost" {
		t.Errorf("dead outcome shown as %q, expected lost", rows[1][3])
	}
}

func TestScoreboardFilterToggle(t *testing.T) {
	m := NewScoreboardModel(testSource(), "bob", 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("initial scores = %d, expected 2", len(m.scores))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	if !m.onlyMine || len(m.scores) != 1 {
		t.Errorf("after tab: onlyMine=%v scores=%d, expected own scores only", m.onlyMine, len(m.scores))
	}
	if !strings.Contains(m.View(), "HIGH SCORES - bob") {
		t.Error("title should name the player when filtered")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeSource{}, "bob", 100, 30)
	if !strings.Contains(empty.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}

	failing := NewScoreboardModel(fakeSource{err: errors.New("locked")}, "bob", 100, 30)
	if !strings.Contains(failing.View(), "locked") {
		t.Error("scoreboard should show the load error")
	}

	none := NewScoreboardModel(nil, "bob", 100, 30)
	if len(none.scores) != 0 {
		t.Error("scoreboard without a source should be empty")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(testSource(), "bob", 100, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit the scoreboard")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
