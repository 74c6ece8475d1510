package sfx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Export writes every effect as a 16-bit stereo WAV file into dir.
// Returns the written paths.
func Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sfx: cannot create %s: %w", dir, err)
	}

	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

	paths := make([]string, 0, effectCount)
	for _, e := range Effects() {
		path := filepath.Join(dir, e.String()+".wav")
		if err := writeWAV(path, e.Streamer(SampleRate), format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeWAV(path string, s beep.Streamer, format beep.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sfx: cannot create %s: %w", path, err)
	}

	if err := wav.Encode(f, s, format); err != nil {
		f.Close()
		return fmt.Errorf("sfx: cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("sfx: cannot close %s: %w", path, err)
	}
	return nil
}
