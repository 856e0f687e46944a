package ledger

import (
	"path/filepath"
	"testing"
	"time"
)

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

func tempSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndPrevious(t *testing.T) {
	s := tempSQLiteStore(t)

	first := Run{
		Pipeline:  "full",
		OutputDir: "/out",
		Files: []File{
			{Filename: "icon_16x16.png", Pixels: 16, Digest: "aaa"},
			{Filename: "icon_16x16@2x.png", Pixels: 32, Digest: "bbb"},
		},
	}
	if _, err := s.Record(first); err != nil {
		t.Fatal(err)
	}
	second := first
	second.Files = []File{{Filename: "icon_16x16.png", Pixels: 16, Digest: "ccc"}}
	if _, err := s.Record(second); err != nil {
		t.Fatal(err)
	}

	prev, err := s.Previous("full", "/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(prev) != 1 || prev["icon_16x16.png"] != "ccc" {
		t.Errorf("Previous = %v, want latest run only", prev)
	}
}

func TestPreviousNoRuns(t *testing.T) {
	s := tempSQLiteStore(t)
	prev, err := s.Previous("fallback", "/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	if len(prev) != 0 {
		t.Errorf("Previous = %v, want empty", prev)
	}
}

func TestPreviousIsScopedToTarget(t *testing.T) {
	s := tempSQLiteStore(t)
	s.Record(Run{Pipeline: "full", OutputDir: "/a", Files: []File{{Filename: "x.png", Digest: "1"}}})
	s.Record(Run{Pipeline: "fallback", OutputDir: "/a", Files: []File{{Filename: "x.png", Digest: "2"}}})
	s.Record(Run{Pipeline: "full", OutputDir: "/b", Files: []File{{Filename: "x.png", Digest: "3"}}})

	prev, _ := s.Previous("full", "/a")
	if prev["x.png"] != "1" {
		t.Errorf("Previous(full, /a) = %v", prev)
	}
}

func TestRuns(t *testing.T) {
	s := tempSQLiteStore(t)
	for i, p := range []string{"fallback", "full", "full"} {
		run := Run{
			Pipeline:  p,
			OutputDir: "/out",
			Files:     []File{{Filename: "icon_16x16.png", Pixels: 16, Digest: "d"}},
		}
		if i == 2 {
			run.Icns = "/res/AppIcon.icns"
			run.IcnsError = "iconutil: exit status 1"
		}
		if _, err := s.Record(run); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Runs(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].IcnsError != "iconutil: exit status 1" || runs[0].Icns != "/res/AppIcon.icns" {
		t.Errorf("newest run = %+v", runs[0])
	}
	if len(runs[0].Files) != 1 || runs[0].Files[0].Pixels != 16 {
		t.Errorf("files = %+v", runs[0].Files)
	}
	if runs[0].Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}

	all, _ := s.Runs(0)
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestClean(t *testing.T) {
	s := tempSQLiteStore(t)
	old := Run{Timestamp: time.Now().AddDate(0, 0, -30), Pipeline: "full", OutputDir: "/o",
		Files: []File{{Filename: "a.png", Digest: "x"}}}
	if _, err := s.Record(old); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record(Run{Pipeline: "full", OutputDir: "/o"}); err != nil {
		t.Fatal(err)
	}

	n, err := s.Clean(7)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Clean removed %d, want 1", n)
	}
	runs, _ := s.Runs(0)
	if len(runs) != 1 {
		t.Errorf("len(runs) = %d, want 1", len(runs))
	}
}

func TestCleanAcrossTimeZones(t *testing.T) {
	s := tempSQLiteStore(t)
	// 30 hours old, but written from a +14:00 zone its local clock text
	// reads later than a one-day cutoff.
	east := time.FixedZone("UTC+14", 14*3600)
	if _, err := s.Record(Run{Timestamp: time.Now().Add(-30 * time.Hour).In(east), Pipeline: "full", OutputDir: "/o"}); err != nil {
		t.Fatal(err)
	}
	west := time.FixedZone("UTC-12", -12*3600)
	if _, err := s.Record(Run{Timestamp: time.Now().Add(-time.Hour).In(west), Pipeline: "full", OutputDir: "/o"}); err != nil {
		t.Fatal(err)
	}

	n, err := s.Clean(1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Clean removed %d, want 1", n)
	}
	runs, _ := s.Runs(0)
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].Timestamp.Location() != time.UTC {
		t.Errorf("stored timestamp location = %v, want UTC", runs[0].Timestamp.Location())
	}
}

func TestDigest(t *testing.T) {
	got := Digest([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Digest = %s", got)
	}
}
