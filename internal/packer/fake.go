package packer

import (
	"context"
	"os"
)

// Fake records Pack calls and returns Err. It is used by tests that
// must run without iconutil.
type Fake struct {
	Err   error
	Calls []FakeCall
}

// FakeCall is one recorded Pack invocation together with the files the
// iconset held at that moment.
type FakeCall struct {
	IconsetDir string
	Dest       string
	Files      []string
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Pack(_ context.Context, iconsetDir, dest string) error {
	call := FakeCall{IconsetDir: iconsetDir, Dest: dest}
	if entries, err := os.ReadDir(iconsetDir); err == nil {
		for _, e := range entries {
			call.Files = append(call.Files, e.Name())
		}
	}
	f.Calls = append(f.Calls, call)
	if f.Err != nil {
		return f.Err
	}
	return os.WriteFile(dest, []byte("icns"), 0644)
}
