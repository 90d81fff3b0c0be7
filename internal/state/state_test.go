package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	assert.Equal(t, IDLE, store.Snapshot().Phase)

	store.SetPhase(EXPORTING)
	store.AddArtifact(ArtifactInfo{Name: "icon.png", Path: "assets/icon.png", Size: 1024})
	store.AddArtifact(ArtifactInfo{Name: "favicon.png", Path: "assets/favicon.png", Size: 512})

	snap := store.Snapshot()
	assert.Equal(t, EXPORTING, snap.Phase)
	assert.Equal(t, []string{"icon.png", "favicon.png"}, []string{snap.Artifacts[0].Name, snap.Artifacts[1].Name})

	// snapshots are copies
	snap.Artifacts[0].Name = "changed"
	assert.Equal(t, "icon.png", store.Snapshot().Artifacts[0].Name)
}

func TestStoreFail(t *testing.T) {
	store := NewStore()
	store.Fail(errors.New("disk full"))
	snap := store.Snapshot()
	assert.Equal(t, ERROR, snap.Phase)
	assert.Equal(t, "disk full", snap.Err)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "rendering", RENDERING.String())
	assert.Equal(t, "done", DONE.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
