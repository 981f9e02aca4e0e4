package models

// CatalogKind identifies one storefront vertical.
type CatalogKind string

const (
	KindFood     CatalogKind = "food"
	KindGrocery  CatalogKind = "grocery"
	KindMedicine CatalogKind = "medicine"
	KindPharmacy CatalogKind = "pharmacy"
	KindService  CatalogKind = "service"
)

// AttrOpen247 marks vendors that operate around the clock.
const AttrOpen247 = "open_247"

// CatalogItem is one entry of any vertical's list. Category is used verbatim
// as the grouping key: two items are co-grouped iff the strings are byte-identical.
type CatalogItem struct {
	ID          string          `json:"id" firestore:"id"`
	Name        string          `json:"name" firestore:"name"`
	Description string          `json:"description" firestore:"description"`
	Vendor      string          `json:"vendor" firestore:"vendor"`
	Price       float64         `json:"price" firestore:"price"`
	Rating      float64         `json:"rating" firestore:"rating"`
	ReviewCount int             `json:"review_count" firestore:"review_count"`
	Category    string          `json:"category" firestore:"category"`
	ImageURL    string          `json:"image_url" firestore:"image_url"`
	Attrs       map[string]bool `json:"attrs,omitempty" firestore:"attrs"`
}

// HasAttr reports whether a toggleable attribute is present and true.
// A missing attribute is treated as false, never as an error.
func (i CatalogItem) HasAttr(name string) bool {
	if i.Attrs == nil {
		return false
	}
	return i.Attrs[name]
}

// CategoryGroup is one ordered section of a composed catalog view.
type CategoryGroup struct {
	Category string        `json:"category"`
	Items    []CatalogItem `json:"items"`
}

// Location scopes catalog queries to one delivery area. Latitude/Longitude are
// optional; when present the service vertical narrows by geohash proximity.
type Location struct {
	City           string  `json:"city"`
	CurrencySymbol string  `json:"currency_symbol"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
}

// Key is the opaque equality key used to detect location changes that must
// invalidate in-flight loads.
func (l Location) Key() string {
	return l.City
}
