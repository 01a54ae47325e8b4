package registry

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/core"
)

type stubRace struct {
	id   string
	opts Options
}

func (s *stubRace) ID() string { return s.id }
func (s *stubRace) Title() string { return "Stub" }
func (s *stubRace) Reset(core.RuntimeConfig) {}
func (s *stubRace) Render(*core.Screen) {}
func (s *stubRace) State() core.RaceState { return core.RaceState{} }
func (s *stubRace) Step(core.ActionFrame, core.ControlInput, float64) core.StepResult {
	return core.StepResult{}
}

func stubFactory(id string) Factory {
	return func(opts Options) Race { return &stubRace{id: id, opts: opts} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-create", "Create Test", stubFactory("test-create"))

	if !Exists("test-create") {
		t.Fatal("registered track should exist")
	}

	r, err := Create("test-create", Options{Countdown: 2})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if r.ID() != "test-create" {
		t.Errorf("ID = %q", r.ID())
	}
	if got := r.(*stubRace).opts.Countdown; got != 2 {
		t.Errorf("factory got Countdown %v, expected 2", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-track", Options{}); err == nil {
		t.Error("expected error for unknown track")
	}
	if Exists("no-such-track") {
		t.Error("unknown track should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", stubFactory("test-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", stubFactory("test-dup"))
}

func TestReplaceOverwrites(t *testing.T) {
	Register("test-replace", "Old", stubFactory("test-replace"))
	Replace("test-replace", "New", stubFactory("test-replace"))

	for _, info := range List() {
		if info.ID == "test-replace" && info.Title != "New" {
			t.Errorf("Title = %q, expected New", info.Title)
		}
	}
}

func TestListSorted(t *testing.T) {
	Replace("test-b", "B", stubFactory("test-b"))
	Replace("test-a", "A", stubFactory("test-a"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
