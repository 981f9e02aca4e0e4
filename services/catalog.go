package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"Townplate/config/database"
	"Townplate/models"
	"Townplate/utils"

	"cloud.google.com/go/firestore"
	"github.com/mmcloughlin/geohash"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// CatalogSource is the external collaborator that owns the raw item lists.
type CatalogSource interface {
	FetchItems(ctx context.Context, kind models.CatalogKind, loc models.Location) ([]models.CatalogItem, error)
}

// viewSources defines which named sources compose each vertical view, in
// render order. The medicine page loads pharmacies and medicine products in
// parallel; every other vertical has a single source.
var viewSources = map[models.CatalogKind][]models.CatalogKind{
	models.KindFood:     {models.KindFood},
	models.KindGrocery:  {models.KindGrocery},
	models.KindMedicine: {models.KindPharmacy, models.KindMedicine},
	models.KindService:  {models.KindService},
}

// ComposedView is the presentation payload for one vertical page: ordered
// category carousels built from whatever sources succeeded, plus the raw
// per-source load states.
type ComposedView struct {
	Kind      models.CatalogKind                                `json:"kind"`
	IsLoading bool                                              `json:"is_loading"`
	Sources   map[string]models.LoadState[[]models.CatalogItem] `json:"sources"`
	Groups    []models.CategoryGroup                            `json:"groups"`
}

type catalogView struct {
	ctrl    *LoadController
	order   []string
	mounted bool
}

// CatalogService composes the vertical catalog views. One load controller per
// vertical survives across requests, so a repeated request for the same city
// serves settled data and a city change supersedes whatever is still in
// flight.
type CatalogService struct {
	mu     sync.Mutex
	source CatalogSource
	logger *zap.Logger
	views  map[models.CatalogKind]*catalogView
}

// NewCatalogService initializes CatalogService with the Firestore-backed
// catalog source.
func NewCatalogService() *CatalogService {
	return NewCatalogServiceWith(NewFirestoreCatalog(), utils.Logger)
}

// NewCatalogServiceWith wires an explicit source, used by tests.
func NewCatalogServiceWith(source CatalogSource, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = utils.Logger
	}
	return &CatalogService{
		source: source,
		logger: logger,
		views:  make(map[models.CatalogKind]*catalogView),
	}
}

// View returns the composed, filtered catalog for one vertical at a location.
// The first request mounts the view; later requests refetch only when the
// location key changed.
func (s *CatalogService) View(ctx context.Context, kind models.CatalogKind, loc models.Location, query string, toggles []string) (ComposedView, error) {
	view, err := s.ensureView(ctx, kind, loc)
	if err != nil {
		return ComposedView{}, err
	}

	view.ctrl.WaitIdle()
	snap := view.ctrl.Snapshot()

	keep := BuildFilter(query, toggles)
	groups := FilterGroups(GroupByCategory(s.flatten(view)), keep)

	return ComposedView{
		Kind:      kind,
		IsLoading: snap.IsLoading,
		Sources:   snap.Sources,
		Groups:    groups,
	}, nil
}

// Items returns the flat filtered item list for one vertical.
func (s *CatalogService) Items(ctx context.Context, kind models.CatalogKind, loc models.Location, query string, toggles []string) ([]models.CatalogItem, error) {
	view, err := s.ensureView(ctx, kind, loc)
	if err != nil {
		return nil, err
	}

	view.ctrl.WaitIdle()

	keep := BuildFilter(query, toggles)
	var out []models.CatalogItem
	for _, item := range s.flatten(view) {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *CatalogService) ensureView(ctx context.Context, kind models.CatalogKind, loc models.Location) (*catalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources, ok := viewSources[kind]
	if !ok {
		return nil, utils.NewCustomError(http.StatusNotFound, "Unknown catalog vertical")
	}

	view, ok := s.views[kind]
	if !ok {
		view = &catalogView{ctrl: NewLoadController(s.logger)}
		for _, src := range sources {
			src := src
			view.order = append(view.order, string(src))
			view.ctrl.Register(string(src), true, func(ctx context.Context, loc models.Location) ([]models.CatalogItem, error) {
				return s.source.FetchItems(ctx, src, loc)
			})
		}
		s.views[kind] = view
	}

	if !view.mounted {
		view.mounted = true
		view.ctrl.Mount(ctx, loc)
	} else {
		view.ctrl.SetLocation(ctx, loc)
	}
	return view, nil
}

// flatten concatenates the successful sources' items in render order. Failed
// sources are omitted; they already reported to the observability sink.
func (s *CatalogService) flatten(view *catalogView) []models.CatalogItem {
	var items []models.CatalogItem
	for _, name := range view.order {
		items = append(items, view.ctrl.Items(name)...)
	}
	return items
}

// FirestoreCatalog reads the per-vertical item collections.
type FirestoreCatalog struct {
	client *firestore.Client
}

var kindCollections = map[models.CatalogKind]string{
	models.KindFood:     "food_items",
	models.KindGrocery:  "grocery_items",
	models.KindMedicine: "medicine_items",
	models.KindPharmacy: "pharmacies",
	models.KindService:  "service_providers",
}

// NewFirestoreCatalog uses the shared Firestore client.
func NewFirestoreCatalog() *FirestoreCatalog {
	return &FirestoreCatalog{client: database.GetFirestoreClient()}
}

// FetchItems queries one vertical's collection scoped to the location's city.
// Service providers with coordinates available are narrowed further by
// geohash prefix, which keeps the query inside a few kilometers of the user.
func (f *FirestoreCatalog) FetchItems(ctx context.Context, kind models.CatalogKind, loc models.Location) ([]models.CatalogItem, error) {
	collection, ok := kindCollections[kind]
	if !ok {
		return nil, fmt.Errorf("no collection for catalog kind %q", kind)
	}

	query := f.client.Collection(collection).Query.Where("city", "==", loc.City)
	if kind == models.KindService && (loc.Latitude != 0 || loc.Longitude != 0) {
		prefix := geohash.Encode(loc.Latitude, loc.Longitude)[:5]
		query = f.client.Collection(collection).Query.
			Where("geohash", ">=", prefix).
			Where("geohash", "<=", prefix+"~")
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var items []models.CatalogItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item models.CatalogItem
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = doc.Ref.ID
		}
		items = append(items, item)
	}

	return items, nil
}
