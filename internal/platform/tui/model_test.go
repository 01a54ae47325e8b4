package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/race"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
	"github.com/vovakirdan/tui-racer/internal/track"
	"github.com/vovakirdan/tui-racer/internal/vehicle"
)

func testOptions() registry.Options {
	return registry.Options{
		Car: vehicle.Stats{
			MaxSpeed:     4,
			TurnRate:     3,
			Acceleration: 60,
			Brake:        90,
			HitboxWidth:  8,
			HitboxHeight: 16,
		},
		Zoom: 4,
	}
}

func testRace() *race.Race {
	g, _ := track.NewGrid(nil)
	return race.New("test", "Test", g, [2]int{10, 10}, testOptions())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func drive(t *testing.T, m Model, ticks int) Model {
	t.Helper()
	base := time.Now()
	m = update(t, m, keyMsg("w"))
	for i := 1; i <= ticks; i++ {
		m = update(t, m, TickMsg(base.Add(time.Duration(i)*10*time.Millisecond)))
	}
	return m
}

func TestModelDrivesRace(t *testing.T) {
	r := testRace()
	start := r.Car().Position

	m := NewModel(r, nil, core.DefaultConfig(), nil)
	m.Init()
	m = drive(t, m, 10)

	if m.State().Distance <= 0 {
		t.Errorf("Distance = %v, expected the car to move", m.State().Distance)
	}
	if r.Car().Position == start {
		t.Error("held throttle should move the car")
	}
}

func TestModelBackSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(testRace(), store, core.DefaultConfig(), nil)
	m.Init()
	m = drive(t, m, 10)

	m = update(t, m, keyMsg("b"))
	if !m.BackToMenu() {
		t.Fatal("b should return to the menu")
	}
	if m.IsQuitting() {
		t.Error("back should not quit a session")
	}

	n, err := store.RunCount("test")
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RunCount = %d, expected 1", n)
	}

	// Leaving twice stores the run once
	m.saveRun()
	if n, _ := store.RunCount("test"); n != 1 {
		t.Errorf("RunCount = %d after second save, expected 1", n)
	}
}

func TestModelStandaloneBackQuits(t *testing.T) {
	m := NewModel(testRace(), nil, core.DefaultConfig(), nil)
	m.standalone = true

	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Error("back in standalone play should quit")
	}
}

func TestModelViewRendersRace(t *testing.T) {
	m := NewModel(testRace(), nil, core.DefaultConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if !strings.Contains(m.View(), "Test") {
		t.Error("view should include the HUD")
	}
}

func TestMenuListsTracks(t *testing.T) {
	cfg := core.DefaultConfig()
	m := NewMenuModel(nil, cfg)

	view := m.View()
	for _, info := range registry.List() {
		if !strings.Contains(view, info.Title) {
			t.Errorf("menu missing track %q", info.Title)
		}
	}

	next, _ := m.Update(keyMsg("enter"))
	mm := next.(MenuModel)
	if mm.Selected() == nil {
		t.Fatal("enter should select a track")
	}
	if !registry.Exists(mm.Selected().TrackID) {
		t.Errorf("selected unknown track %q", mm.Selected().TrackID)
	}
}

func TestSessionMenuToRaceAndBack(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewSessionModel(nil, cfg, testOptions(), nil)

	next, _ := s.Update(keyMsg("enter"))
	s = next.(SessionModel)
	if s.screen != screenRace || s.race == nil {
		t.Fatalf("screen = %v, expected race", s.screen)
	}

	next, _ = s.Update(keyMsg("b"))
	s = next.(SessionModel)
	if s.screen != screenMenu || s.race != nil {
		t.Errorf("screen = %v, expected menu", s.screen)
	}

	next, _ = s.Update(keyMsg("tab"))
	s = next.(SessionModel)
	if s.screen != screenScoreboard {
		t.Errorf("screen = %v, expected scoreboard", s.screen)
	}
}
