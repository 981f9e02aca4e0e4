package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"Townplate/models"
	"Townplate/utils"

	"go.uber.org/zap"
)

// fakeSource serves canned per-kind lists and can fail selected kinds.
type fakeSource struct {
	items map[models.CatalogKind][]models.CatalogItem
	fail  map[models.CatalogKind]error
}

func (f *fakeSource) FetchItems(ctx context.Context, kind models.CatalogKind, loc models.Location) ([]models.CatalogItem, error) {
	if err := f.fail[kind]; err != nil {
		return nil, err
	}
	return f.items[kind], nil
}

func TestCatalogServiceView(t *testing.T) {
	source := &fakeSource{
		items: map[models.CatalogKind][]models.CatalogItem{
			models.KindPharmacy: {
				{ID: "p1", Name: "City Pharmacy", Category: "Pharmacies", Attrs: map[string]bool{models.AttrOpen247: true}},
				{ID: "p2", Name: "Corner Pharmacy", Category: "Pharmacies"},
			},
			models.KindMedicine: {
				{ID: "m1", Name: "Paracetamol", Category: "Pain Relief"},
				{ID: "m2", Name: "Vitamin C", Category: "Supplements"},
			},
		},
		fail: map[models.CatalogKind]error{},
	}
	svc := NewCatalogServiceWith(source, zap.NewNop())
	loc := models.Location{City: "Austin"}

	t.Run("composes parallel sources into ordered groups", func(t *testing.T) {
		view, err := svc.View(context.Background(), models.KindMedicine, loc, "", nil)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if view.IsLoading {
			t.Error("expected the view to be settled")
		}
		if len(view.Groups) != 3 {
			t.Fatalf("expected 3 groups, got %d: %+v", len(view.Groups), view.Groups)
		}
		// Pharmacies render before medicine products.
		if view.Groups[0].Category != "Pharmacies" {
			t.Errorf("expected pharmacies first, got %q", view.Groups[0].Category)
		}
	})

	t.Run("filters compose text and toggles", func(t *testing.T) {
		view, err := svc.View(context.Background(), models.KindMedicine, loc, "pharmacy", []string{models.AttrOpen247})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if len(view.Groups) != 1 || len(view.Groups[0].Items) != 1 || view.Groups[0].Items[0].ID != "p1" {
			t.Fatalf("expected only the open 24/7 pharmacy, got %+v", view.Groups)
		}
	})

	t.Run("unknown vertical is an error", func(t *testing.T) {
		_, err := svc.View(context.Background(), models.CatalogKind("jetski"), loc, "", nil)
		if err == nil {
			t.Fatal("expected an error for an unknown vertical")
		}
		var customErr *utils.CustomError
		if !errors.As(err, &customErr) {
			t.Fatalf("expected the error to carry its HTTP status, got: %v", err)
		}
		if customErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", customErr.StatusCode)
		}
	})
}

func TestCatalogServiceFailedSourceIsOmitted(t *testing.T) {
	source := &fakeSource{
		items: map[models.CatalogKind][]models.CatalogItem{
			models.KindMedicine: {
				{ID: "m1", Name: "Paracetamol", Category: "Pain Relief"},
			},
		},
		fail: map[models.CatalogKind]error{
			models.KindPharmacy: errors.New("upstream down"),
		},
	}
	svc := NewCatalogServiceWith(source, zap.NewNop())

	view, err := svc.View(context.Background(), models.KindMedicine, models.Location{City: "Austin"}, "", nil)
	if err != nil {
		t.Fatalf("a failed source must not fail the composed view: %v", err)
	}

	if view.IsLoading {
		t.Error("expected the view to settle even with a failed source")
	}
	if len(view.Groups) != 1 || view.Groups[0].Category != "Pain Relief" {
		t.Fatalf("expected only the surviving source's groups, got %+v", view.Groups)
	}
	if st := view.Sources[string(models.KindPharmacy)]; st.Phase != models.PhaseError {
		t.Errorf("expected the failed source to expose its error state, got %+v", st)
	}
}

func TestCatalogServiceItems(t *testing.T) {
	source := &fakeSource{
		items: map[models.CatalogKind][]models.CatalogItem{
			models.KindFood: {
				{ID: "f1", Name: "Margherita Pizza", Category: "Pizza"},
				{ID: "f2", Name: "Pepperoni Pizza", Category: "Pizza"},
				{ID: "f3", Name: "Caesar Salad", Category: "Salads"},
			},
		},
		fail: map[models.CatalogKind]error{},
	}
	svc := NewCatalogServiceWith(source, zap.NewNop())

	items, err := svc.Items(context.Background(), models.KindFood, models.Location{City: "Austin"}, "pizza", nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 pizzas, got %d", len(items))
	}
}
