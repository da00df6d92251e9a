package shader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "a.vert")
	frag := filepath.Join(dir, "a.frag")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{vert, frag, other} {
		require.NoError(t, os.WriteFile(p, []byte("void main() {}"), 0644))
	}

	w, err := Watch(vert, frag)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	select {
	case <-w.Changed():
		t.Fatal("unexpected signal for unwatched file")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(frag, []byte("void main() { }"), 0644))
	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after writing watched file")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "gone", "a.vert"))
	require.Error(t, err)
}
