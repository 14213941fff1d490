package allofyou

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
)

// jpegQuality is used for snapshots whose label ends in .jpg or .jpeg.
const jpegQuality = 95

// Screenshot queues a labeled snapshot to be written at the end of the
// current frame's Update. The image is written to ScreenshotDir with a
// timestamped filename: JPEG when the label ends in .jpg or .jpeg, PNG
// otherwise.
func (s *Session) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
	if s.sink != nil {
		s.sink.EmitEvent(SessionEvent{Type: EventScreenshot, Mode: s.modes.Mode(), PanelIndex: -1, Label: label})
	}
}

// flushScreenshots renders the frame once for every queued label and
// writes each file. Failures are reported on stderr and do not stop the
// session.
func (s *Session) flushScreenshots() {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		debugf("screenshot: mkdir %s: %v", s.ScreenshotDir, err)
		return
	}

	img := s.Snapshot(SnapshotOptions{Texture: s.Texture, Labels: s.SnapshotLabels})
	stamp := time.Now().Format("20060102_150405")

	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, screenshotName(stamp, label))
		if err := writeSnapshot(path, img); err != nil {
			debugf("screenshot: %v", err)
		}
	}
}

// screenshotName builds "<stamp>_<label>" with a .png extension unless the
// label already names a JPEG or PNG file.
func screenshotName(stamp, label string) string {
	safe := sanitizeLabel(label)
	switch strings.ToLower(filepath.Ext(safe)) {
	case ".jpg", ".jpeg", ".png":
		return fmt.Sprintf("%s_%s", stamp, safe)
	}
	return fmt.Sprintf("%s_%s.png", stamp, safe)
}

// writeSnapshot encodes img to path, choosing the format by extension.
func writeSnapshot(path string, img image.Image) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = saveJPEG(path, img)
	default:
		err = gg.SavePNG(path, img)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func saveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
