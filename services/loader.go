package services

import (
	"context"
	"sync"

	"Townplate/models"
	"Townplate/utils"

	"go.uber.org/zap"
)

// FetchFunc pulls one source's items for a location, typically backed by a
// CatalogSource.
type FetchFunc func(ctx context.Context, loc models.Location) ([]models.CatalogItem, error)

// ViewState is what the presentation layer renders for one composed view.
// IsLoading stays true until every required source has settled (success or
// error); failed sources simply contribute no items.
type ViewState struct {
	IsLoading bool                                              `json:"is_loading"`
	Sources   map[string]models.LoadState[[]models.CatalogItem] `json:"sources"`
}

type sourceSlot struct {
	required   bool
	fetch      FetchFunc
	generation uint64
	state      models.LoadState[[]models.CatalogItem]
}

// LoadController governs the fetch lifecycle of the named data sources behind
// one view. Every trigger (mount, location change, reload) bumps a per-source
// generation; a completion whose generation is no longer current is discarded,
// so only the most recently initiated fetch can commit state. Fetches are
// never force-aborted.
type LoadController struct {
	mu       sync.Mutex
	wg       sync.WaitGroup
	logger   *zap.Logger
	mounted  bool
	location models.Location
	sources  map[string]*sourceSlot
}

// NewLoadController creates a controller with no registered sources.
func NewLoadController(logger *zap.Logger) *LoadController {
	if logger == nil {
		logger = utils.Logger
	}
	return &LoadController{
		logger:  logger,
		sources: make(map[string]*sourceSlot),
	}
}

// Register adds a named source. Required sources hold the aggregate loading
// signal until they settle; optional ones do not.
func (c *LoadController) Register(name string, required bool, fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = &sourceSlot{
		required: required,
		fetch:    fetch,
		state:    models.Idle[[]models.CatalogItem](),
	}
}

// Mount activates the view at a location and starts fetching every source.
func (c *LoadController) Mount(ctx context.Context, loc models.Location) {
	c.mu.Lock()
	c.mounted = true
	c.location = loc
	c.startAllLocked(ctx)
	c.mu.Unlock()
}

// Unmount deactivates the view. In-flight fetches keep running but their
// results become no-ops on arrival.
func (c *LoadController) Unmount() {
	c.mu.Lock()
	c.mounted = false
	c.mu.Unlock()
}

// SetLocation refetches all sources when the location key actually changed.
// Results of fetches initiated for the previous location are superseded.
func (c *LoadController) SetLocation(ctx context.Context, loc models.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted || c.location.Key() == loc.Key() {
		return
	}
	c.location = loc
	c.startAllLocked(ctx)
}

// Reload refetches every source at the current location.
func (c *LoadController) Reload(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.startAllLocked(ctx)
	}
	c.mu.Unlock()
}

// startAllLocked bumps each source's generation synchronously so supersession
// is decided at trigger time, then fetches in the background.
func (c *LoadController) startAllLocked(ctx context.Context) {
	for name, slot := range c.sources {
		slot.generation++
		slot.state = models.Loading[[]models.CatalogItem]()
		c.wg.Add(1)
		go c.run(ctx, name, slot, slot.generation, c.location)
	}
}

func (c *LoadController) run(ctx context.Context, name string, slot *sourceSlot, generation uint64, loc models.Location) {
	defer c.wg.Done()

	items, err := slot.fetch(ctx, loc)

	c.mu.Lock()
	defer c.mu.Unlock()

	if slot.generation != generation || !c.mounted {
		c.logger.Debug("discarding superseded fetch result",
			zap.String("source", name),
			zap.Uint64("generation", generation))
		return
	}

	if err != nil {
		// Non-fatal: other sources keep rendering, this one just reports
		// to the observability sink and settles in the error state.
		c.logger.Warn("catalog source fetch failed",
			zap.String("source", name),
			zap.Error(err))
		slot.state = models.Failed[[]models.CatalogItem](err.Error())
		return
	}

	slot.state = models.Succeeded(items)
}

// Snapshot returns the current per-source states plus the aggregate loading
// signal.
func (c *LoadController) Snapshot() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := ViewState{Sources: make(map[string]models.LoadState[[]models.CatalogItem], len(c.sources))}
	for name, slot := range c.sources {
		snap.Sources[name] = slot.state
		if slot.required && !slot.state.Terminal() {
			snap.IsLoading = true
		}
	}
	return snap
}

// Items returns the successfully loaded items of one source, or nil if the
// source is absent, pending, or failed.
func (c *LoadController) Items(name string) []models.CatalogItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot, ok := c.sources[name]
	if !ok || slot.state.Phase != models.PhaseSuccess {
		return nil
	}
	return slot.state.Data
}

// WaitIdle blocks until every started fetch has completed or been discarded.
// Used on shutdown and in tests; steady-state callers never need it.
func (c *LoadController) WaitIdle() {
	c.wg.Wait()
}
