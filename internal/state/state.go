package state

import "sync"

type Phase int

const (
	IDLE Phase = iota
	RENDERING
	EXPORTING
	PREVIEWING
	DISPLAYING
	DONE
	ERROR
)

var phaseNames = [...]string{"idle", "rendering", "exporting", "previewing", "displaying", "done", "error"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// ArtifactInfo describes one file that reached its final path.
type ArtifactInfo struct {
	Name string
	Path string
	Size int
}

type State struct {
	Phase     Phase
	Artifacts []ArtifactInfo
	Err       string
}

// Store holds the progress of one generator run. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

// Snapshot returns a copy that does not share the artifact slice.
func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Artifacts = append([]ArtifactInfo(nil), store.state.Artifacts...)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) AddArtifact(info ArtifactInfo) {
	store.mu.Lock()
	store.state.Artifacts = append(store.state.Artifacts, info)
	store.mu.Unlock()
}

// Fail moves the run to ERROR and records err.
func (store *Store) Fail(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}
