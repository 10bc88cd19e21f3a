package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onaio/onadata/profile"
)

func TestProfilerDisabled(t *testing.T) {
	cfg := profile.NewConfig()
	cfg.MemProfileRate = 524288

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}

func TestProfilerWritesProfiles(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPUProfile = filepath.Join(dir, "cpu.pprof")
	cfg.HeapProfile = filepath.Join(dir, "heap.pprof")
	cfg.MemProfileRate = 524288

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())

	// Burn a little CPU so the profile has something to sample.
	total := 0
	for i := range 1_000_000 {
		total += i
	}

	_ = total

	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPUProfile, cfg.HeapProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err, "profile %s", path)
		assert.Positive(t, info.Size(), "profile %s", path)
	}
}
