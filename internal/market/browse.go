package market

import (
	"sort"
	"strings"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/models"
)

// SortOrder names a browse ordering.
type SortOrder string

const (
	SortNewest   SortOrder = "newest"
	SortRating   SortOrder = "rating"
	SortPriceLow SortOrder = "priceLow"
	SortSales    SortOrder = "sales"
)

// BrowseFilter narrows the document listing. Empty fields match everything.
type BrowseFilter struct {
	Query      string
	University string
	Country    models.CountryCode
	Subject    string
	Type       models.DocumentType
	Sort       SortOrder
}

// FilterOptions are the distinct values present in the listing, sorted.
type FilterOptions struct {
	Universities []string `json:"universities"`
	Subjects     []string `json:"subjects"`
	Types        []string `json:"types"`
	Countries    []string `json:"countries"`
}

func matchesQuery(d models.Document, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Title), q) ||
		strings.Contains(strings.ToLower(d.Description), q) ||
		strings.Contains(strings.ToLower(d.CourseCode), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Browse returns the documents matching f in the requested order. Unknown
// sort orders fall back to newest first.
func (s *Service) Browse(f BrowseFilter) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Document, 0, len(s.documents))
	for _, d := range s.documents {
		if !matchesQuery(d, q) {
			continue
		}
		if f.University != "" && d.University != f.University {
			continue
		}
		if f.Country != "" && d.Country != f.Country {
			continue
		}
		if f.Subject != "" && d.Subject != f.Subject {
			continue
		}
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		out = append(out, cloneDocument(d))
	}

	switch f.Sort {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].RatingAverage > out[j].RatingAverage })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortSales:
		sales := make(map[string]int, len(out))
		for _, d := range out {
			sales[d.ID] = s.salesCount(d.ID)
		}
		sort.SliceStable(out, func(i, j int) bool { return sales[out[i].ID] > sales[out[j].ID] })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

func (s *Service) FilterOptions() FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unis := map[string]struct{}{}
	subjects := map[string]struct{}{}
	types := map[string]struct{}{}
	countries := map[string]struct{}{}
	for _, d := range s.documents {
		unis[d.University] = struct{}{}
		subjects[d.Subject] = struct{}{}
		types[string(d.Type)] = struct{}{}
		countries[string(d.Country)] = struct{}{}
	}
	return FilterOptions{
		Universities: sortedKeys(unis),
		Subjects:     sortedKeys(subjects),
		Types:        sortedKeys(types),
		Countries:    sortedKeys(countries),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
