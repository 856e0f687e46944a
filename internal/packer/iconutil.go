package packer

import (
	"context"
	"fmt"

	"golang.org/x/sys/execabs"
)

// IconutilPacker shells out to macOS iconutil.
type IconutilPacker struct{}

// IconutilAvailable reports whether iconutil is on PATH.
func IconutilAvailable() bool {
	_, err := execabs.LookPath("iconutil")
	return err == nil
}

func (IconutilPacker) Name() string { return Iconutil }

// Pack runs `iconutil -c icns <iconsetDir> -o <dest>`.
// Returns an error if iconutil is not found on PATH.
func (IconutilPacker) Pack(ctx context.Context, iconsetDir, dest string) error {
	if _, err := execabs.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH (macOS only, try --packer native): %w", err)
	}
	cmd := execabs.CommandContext(ctx, "iconutil", "-c", "icns", iconsetDir, "-o", dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil: %w\n%s", err, out)
	}
	return nil
}
