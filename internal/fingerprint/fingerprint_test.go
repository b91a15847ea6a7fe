package fingerprint

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	sig Signals
	err error
}

func (s stubSource) Collect() (Signals, error) {
	return s.sig, s.err
}

func fullSignals() Signals {
	return Signals{
		CanvasDigest:  "canvas-digest",
		WebGLVendor:   "Mesa",
		WebGLRenderer: "llvmpipe",
		Screen:        "1920x1080",
		ColorDepth:    24,
		Timezone:      "Europe/Berlin",
		Language:      "de-DE",
		Platform:      "linux/amd64",
		Cores:         8,
		MemoryGB:      16,
		NetworkType:   "wifi",
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	src := stubSource{sig: fullSignals()}

	a := New(NewMemStore(), src).DeviceID()
	b := New(NewMemStore(), src).DeviceID()

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "dev_"))
	assert.Len(t, a, len("dev_")+16)
}

func TestGenerator_DifferentSignalsDifferentIDs(t *testing.T) {
	a := New(NewMemStore(), stubSource{sig: fullSignals()}).DeviceID()

	other := fullSignals()
	other.Screen = "2560x1440"
	b := New(NewMemStore(), stubSource{sig: other}).DeviceID()

	assert.NotEqual(t, a, b)
}

func TestGenerator_CachedIDWins(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Set(StoreKey, "dev_cached000000000"))

	// Even with fresh signals available, the persisted id is the one
	// the device keeps presenting.
	g := New(store, stubSource{sig: fullSignals()})
	assert.Equal(t, "dev_cached000000000", g.DeviceID())
}

func TestGenerator_PersistsComputedID(t *testing.T) {
	store := NewMemStore()
	g := New(store, stubSource{sig: fullSignals()})

	id := g.DeviceID()
	cached, ok := store.Get(StoreKey)
	require.True(t, ok)
	assert.Equal(t, id, cached)

	// Second call must come from the store, not a recompute.
	assert.Equal(t, id, g.DeviceID())
}

func TestGenerator_FallbackOnCollectFailure(t *testing.T) {
	g := New(NewMemStore(), stubSource{err: errors.New("probe failed")})

	id := g.DeviceID()
	assert.True(t, strings.HasPrefix(id, "dev_rnd_"))

	// The fallback is random but persisted, so it stays stable.
	assert.Equal(t, id, g.DeviceID())
}

func TestGenerator_MissingProbesGetPlaceholders(t *testing.T) {
	blocked := fullSignals()
	blocked.CanvasDigest = ""
	blocked.WebGLVendor = ""
	blocked.WebGLRenderer = ""

	a := New(NewMemStore(), stubSource{sig: blocked}).DeviceID()
	b := New(NewMemStore(), stubSource{sig: blocked}).DeviceID()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, New(NewMemStore(), stubSource{sig: fullSignals()}).DeviceID())
}

func TestGenerator_Reset(t *testing.T) {
	g := New(NewMemStore(), stubSource{err: errors.New("probe failed")})

	first := g.DeviceID()
	second := g.Reset()

	// Random fallback ids regenerate on reset.
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, g.DeviceID())
}

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "device.json")
	store := NewFileStore(path)

	_, ok := store.Get(StoreKey)
	assert.False(t, ok)

	require.NoError(t, store.Set(StoreKey, "dev_abc"))

	// A new store over the same file sees the value: persistence
	// survives process restarts.
	v, ok := NewFileStore(path).Get(StoreKey)
	require.True(t, ok)
	assert.Equal(t, "dev_abc", v)

	require.NoError(t, store.Delete(StoreKey))
	_, ok = store.Get(StoreKey)
	assert.False(t, ok)
}

func TestHostSource_Stable(t *testing.T) {
	a, err := HostSource{}.Collect()
	require.NoError(t, err)

	b, err := HostSource{}.Collect()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
