package loadcase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fatiguelab/spectrum/loadcase"
)

const watchTimeout = 5 * time.Second

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")
	valid := `
spectrum:
  filename: out.spc
cases:
  - type: sine
    name: sweep
    stress_1g: 10
    load: 2
    sweep_rate: 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *loadcase.File, 1)
	errs := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		done <- loadcase.Watch(ctx, path,
			func(f *loadcase.File) {
				select {
				case changes <- f:
				default:
				}
			},
			func(err error) {
				select {
				case errs <- err:
				default:
				}
			})
	}()

	// Give the watcher time to register before the first write.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))
	select {
	case f := <-changes:
		require.Len(t, f.Cases, 1)
		assert.Equal(t, "sweep", f.Cases[0].Name())
	case <-time.After(watchTimeout):
		t.Fatal("no reload after case file write")
	}

	// An invalid edit is reported and keeps the previous spectrum.
	require.NoError(t, os.WriteFile(path, []byte("cases: [nonsense"), 0o644))
	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(watchTimeout):
		t.Fatal("no error reported after invalid case file write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(watchTimeout):
		t.Fatal("watch did not stop on context cancel")
	}
}
