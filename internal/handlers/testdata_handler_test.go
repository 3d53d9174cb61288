package handlers

import (
	"testing"

	"github.com/salonova-app/booking-api/internal/validators"
)

func TestSampleDataSetConsistency(t *testing.T) {
	set := sampleDataSet()

	if len(set.Cities) == 0 || len(set.Categories) == 0 || len(set.Businesses) == 0 {
		t.Fatal("sample set missing catalog data")
	}

	cities := map[uint]bool{}
	for _, c := range set.Cities {
		cities[c.ID] = true
	}
	categories := map[uint]bool{}
	for _, c := range set.Categories {
		categories[c.ID] = true
	}

	businesses := map[uint]bool{}
	slugs := map[string]bool{}
	for _, b := range set.Businesses {
		if !cities[b.CityID] {
			t.Errorf("business %q references unknown city %d", b.Name, b.CityID)
		}
		if !categories[b.CategoryID] {
			t.Errorf("business %q references unknown category %d", b.Name, b.CategoryID)
		}
		if b.Slug == "" || slugs[b.Slug] {
			t.Errorf("business %q has missing or duplicate slug %q", b.Name, b.Slug)
		}
		slugs[b.Slug] = true
		businesses[b.ID] = true
	}

	employees := map[uint]bool{}
	for _, e := range set.Employees {
		if !businesses[e.BusinessID] {
			t.Errorf("employee %q references unknown business %d", e.Name, e.BusinessID)
		}
		employees[e.ID] = true
	}

	for _, s := range set.Services {
		if !businesses[s.BusinessID] {
			t.Errorf("service %q references unknown business %d", s.Name, s.BusinessID)
		}
		if s.Price <= 0 || s.DurationMin <= 0 {
			t.Errorf("service %q has non-positive price or duration", s.Name)
		}
		if s.OnPromotion && (s.OriginalPrice == nil || *s.OriginalPrice <= s.Price) {
			t.Errorf("service %q promotion has no higher original price", s.Name)
		}
	}

	for _, p := range set.Promotions {
		if !businesses[p.BusinessID] {
			t.Errorf("promotion %q references unknown business %d", p.Title, p.BusinessID)
		}
	}

	if len(set.Hours) == 0 {
		t.Fatal("sample set has no working hours")
	}
	for _, wh := range set.Hours {
		if !employees[wh.EmployeeID] {
			t.Errorf("working hours reference unknown employee %d", wh.EmployeeID)
		}
		for _, hm := range []string{wh.StartTime, wh.EndTime, wh.BreakStart, wh.BreakEnd} {
			if !validators.IsHHMM(hm) {
				t.Errorf("employee %d weekday %d: bad clock value %q", wh.EmployeeID, wh.Weekday, hm)
			}
		}
		if wh.Weekday < 0 || wh.Weekday > 6 {
			t.Errorf("weekday %d out of range", wh.Weekday)
		}
	}
}
