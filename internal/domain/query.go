package domain

import (
	"sort"
	"strings"
	"time"
)

// SortKey selects the comparator applied to a filtered listing. Unknown keys
// leave the input order untouched.
type SortKey string

const (
	SortDateAsc        SortKey = "date-asc"
	SortDateDesc       SortKey = "date-desc"
	SortNewest         SortKey = "newest"
	SortPriceAsc       SortKey = "price-asc"
	SortPriceDesc      SortKey = "price-desc"
	SortRatingDesc     SortKey = "rating-desc"
	SortPopularityDesc SortKey = "popularity"
)

// TourFilter is a set of AND-composed predicates. Zero-valued fields are
// inactive.
type TourFilter struct {
	Location      string
	Difficulty    Difficulty
	MinRating     float64
	MinPriceCents int64
	MaxPriceCents int64
	Tags          []string
	Search        string
}

func (f TourFilter) Match(t *Tour) bool {
	if f.Location != "" && !strings.EqualFold(t.Location, f.Location) {
		return false
	}
	if f.Difficulty != "" && t.Difficulty != f.Difficulty {
		return false
	}
	if f.MinRating > 0 && t.Rating < f.MinRating {
		return false
	}
	if f.MinPriceCents > 0 && t.PriceCents < f.MinPriceCents {
		return false
	}
	if f.MaxPriceCents > 0 && t.PriceCents > f.MaxPriceCents {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(t.Tags, f.Tags) {
		return false
	}
	if f.Search != "" && !matchesSearch(t, f.Search) {
		return false
	}
	return true
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func matchesSearch(t *Tour, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Location), term) ||
		strings.Contains(strings.ToLower(t.Description), term) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// QueryTours returns a new, ordered slice; the input is never mutated.
// sort.SliceStable keeps the original relative order for equal keys.
func QueryTours(tours []Tour, filter TourFilter, key SortKey) []Tour {
	out := make([]Tour, 0, len(tours))
	for i := range tours {
		if filter.Match(&tours[i]) {
			out = append(out, tours[i])
		}
	}
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortPopularityDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReviewCount > out[j].ReviewCount })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// BookingFilter mirrors TourFilter for booking listings.
type BookingFilter struct {
	Status        BookingStatus
	PaymentStatus PaymentStatus
	CustomerID    string
	HostID        string
	DateFrom      time.Time
	DateTo        time.Time
}

func (f BookingFilter) Match(b *Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	if f.HostID != "" && b.HostID != f.HostID {
		return false
	}
	if !f.DateFrom.IsZero() && b.Date.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && b.Date.After(f.DateTo) {
		return false
	}
	return true
}

// QueryBookings filters and orders a booking collection without mutating it.
func QueryBookings(bookings []Booking, filter BookingFilter, key SortKey) []Booking {
	out := make([]Booking, 0, len(bookings))
	for i := range bookings {
		if filter.Match(&bookings[i]) {
			out = append(out, bookings[i])
		}
	}
	switch key {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmountCents < out[j].TotalAmountCents })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmountCents > out[j].TotalAmountCents })
	}
	return out
}
