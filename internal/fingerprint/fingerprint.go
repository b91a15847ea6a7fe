package fingerprint

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreKey is the key the generated identifier is cached under.
const StoreKey = "persistent_device_id"

const (
	noCanvas = "no_canvas"
	noWebGL  = "no_webgl"
)

// Store is the persistent local key-value store backing the cached
// identifier. It mirrors a browser's localStorage surface.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Signals are the static device attributes folded into the identifier.
// Anything that changes between calls (wall clock, battery, network
// counters) must stay out: the same profile has to produce the same id
// on every visit.
type Signals struct {
	CanvasDigest  string
	WebGLVendor   string
	WebGLRenderer string
	Screen        string
	ColorDepth    int
	Timezone      string
	Language      string
	Platform      string
	Cores         int
	MemoryGB      int
	NetworkType   string
}

// Source collects Signals. Collection is allowed to fail; the generator
// degrades to a random persisted id in that case.
type Source interface {
	Collect() (Signals, error)
}

type Generator struct {
	store  Store
	source Source
}

func New(store Store, source Source) *Generator {
	return &Generator{store: store, source: source}
}

// DeviceID returns the cached identifier if one exists, otherwise
// computes, persists and returns a new one. It never returns an error:
// a device that cannot be fingerprinted still gets a stable random id,
// because failing to fingerprint must not block login.
func (g *Generator) DeviceID() string {
	if id, ok := g.store.Get(StoreKey); ok && id != "" {
		return id
	}

	id := g.compute()
	if err := g.store.Set(StoreKey, id); err != nil {
		zap.L().Warn("failed to persist device id", zap.Error(err))
	}

	return id
}

// Reset discards the cached identifier and generates a fresh one. Only
// used by admin-initiated device-switch flows and tests.
func (g *Generator) Reset() string {
	if err := g.store.Delete(StoreKey); err != nil {
		zap.L().Warn("failed to clear device id", zap.Error(err))
	}
	return g.DeviceID()
}

func (g *Generator) compute() string {
	sig, err := g.source.Collect()
	if err != nil {
		zap.L().Warn("signal collection failed, using fallback id", zap.Error(err))
		return fallbackID()
	}

	if sig.CanvasDigest == "" {
		sig.CanvasDigest = noCanvas
	}
	if sig.WebGLVendor == "" && sig.WebGLRenderer == "" {
		sig.WebGLVendor, sig.WebGLRenderer = noWebGL, noWebGL
	}

	composite := strings.Join(
		[]string{
			sig.CanvasDigest,
			sig.WebGLVendor,
			sig.WebGLRenderer,
			sig.Screen,
			fmt.Sprintf("%d", sig.ColorDepth),
			sig.Timezone,
			sig.Language,
			sig.Platform,
			fmt.Sprintf("%d", sig.Cores),
			fmt.Sprintf("%d", sig.MemoryGB),
			sig.NetworkType,
		}, "|",
	)

	// Two independent accumulators halve the effective collision
	// probability of a single 32-bit hash.
	var h1, h2 uint32 = 0x811c9dc5, 0x01000193
	for i := 0; i < len(composite); i++ {
		h1 = h1*31 + uint32(composite[i])
		h2 = (h2 ^ uint32(composite[i])) * 16777619
	}

	return fmt.Sprintf("dev_%08x%08x", h1, h2)
}

func fallbackID() string {
	return "dev_rnd_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HostSource derives signals from the running host. It is the non-browser
// analogue of the canvas/WebGL probes: stable per machine, different
// across machines with reasonable probability.
type HostSource struct{}

func (HostSource) Collect() (Signals, error) {
	zone, _ := time.Now().Zone()
	return Signals{
		Screen:   "headless",
		Timezone: zone,
		Language: os.Getenv("LANG"),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Cores:    runtime.NumCPU(),
	}, nil
}
