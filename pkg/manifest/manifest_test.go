package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.Snapshots)
	require.Empty(t, m.CurrentVersion)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brew", "manifest.yaml")

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v1", File: "out/Car.java.gen", Emitters: []string{"getters", "equals-hash"}})
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v2", File: "out/Car.v2.java.gen", Emitters: []string{"getters"}})
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m, got)
	require.Equal(t, "v2", got.CurrentVersion)
	require.Equal(t, "v1", got.PreviousVersion)
}

func TestAddSnapshotDeduplicates(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v1", File: "a"})
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v1", File: "b"})

	require.Len(t, m.Snapshots, 1)
	require.Equal(t, "b", m.Snapshots[0].File)
	require.Equal(t, "v1", m.CurrentVersion)
	require.Empty(t, m.PreviousVersion)
}

func TestSnapshotFile(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v1", File: "out/v1"})
	m.AddSnapshot(Snapshot{Class: "Car", Version: "v2", File: "out/v2"})

	require.Equal(t, "out/v1", m.SnapshotFile("v1"))
	require.Equal(t, "out/v2", m.SnapshotFile("v2"))
	require.Empty(t, m.SnapshotFile("v3"))
}
