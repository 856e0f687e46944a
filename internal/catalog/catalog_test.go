package catalog

import "testing"

func TestMacOSCatalog(t *testing.T) {
	tests := []struct {
		points, scale, px int
		file, scaleLabel  string
		sizeLabel         string
	}{
		{16, 1, 16, "icon_16x16.png", "1x", "16x16"},
		{16, 2, 32, "icon_16x16@2x.png", "2x", "16x16"},
		{32, 1, 32, "icon_32x32.png", "1x", "32x32"},
		{32, 2, 64, "icon_32x32@2x.png", "2x", "32x32"},
		{128, 1, 128, "icon_128x128.png", "1x", "128x128"},
		{128, 2, 256, "icon_128x128@2x.png", "2x", "128x128"},
		{256, 1, 256, "icon_256x256.png", "1x", "256x256"},
		{256, 2, 512, "icon_256x256@2x.png", "2x", "256x256"},
		{512, 1, 512, "icon_512x512.png", "1x", "512x512"},
		{512, 2, 1024, "icon_512x512@2x.png", "2x", "512x512"},
	}
	if len(MacOS) != len(tests) {
		t.Fatalf("len(MacOS) = %d, want %d", len(MacOS), len(tests))
	}
	for i, tt := range tests {
		s := MacOS[i]
		if s.Points != tt.points || s.Scale != tt.scale || s.Filename != tt.file {
			t.Errorf("MacOS[%d] = %+v", i, s)
		}
		if got := s.PixelSize(); got != tt.px {
			t.Errorf("%s PixelSize() = %d, want %d", s.Filename, got, tt.px)
		}
		if got := s.ScaleLabel(); got != tt.scaleLabel {
			t.Errorf("%s ScaleLabel() = %q, want %q", s.Filename, got, tt.scaleLabel)
		}
		if got := s.SizeLabel(); got != tt.sizeLabel {
			t.Errorf("%s SizeLabel() = %q, want %q", s.Filename, got, tt.sizeLabel)
		}
	}
}

func TestDefaultIsCopy(t *testing.T) {
	d := Default()
	d[0].Filename = "changed.png"
	if MacOS[0].Filename != "icon_16x16.png" {
		t.Errorf("Default() aliases the shared table")
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(Default(), "icon_128x128@2x.png")
	if !ok {
		t.Fatal("expected entry")
	}
	if s.PixelSize() != 256 {
		t.Errorf("PixelSize = %d, want 256", s.PixelSize())
	}
	if _, ok := Lookup(Default(), "icon_64x64.png"); ok {
		t.Error("unexpected entry for icon_64x64.png")
	}
}

func TestLargest(t *testing.T) {
	s, ok := Largest(Default())
	if !ok || s.Filename != "icon_512x512@2x.png" {
		t.Errorf("Largest = %+v, %v", s, ok)
	}
	if _, ok := Largest(nil); ok {
		t.Error("Largest(nil) should report false")
	}
}
