package dataset

import (
	"slices"

	"github.com/orbitdata/query-data/internal/catalog"
)

// ClassCount is the number of rows of one orbit class
type ClassCount struct {
	Class catalog.OrbitClass
	Count int
}

// Stats summarises a dataset by orbit class
type Stats struct {
	Classes []ClassCount // every known class in table order, then unknown classes sorted by code
	Total   int          // rows in the dataset
}

// TotalWithSun is the body count the dataset describes, the implicit Sun included
func (s Stats) TotalWithSun() int {
	return s.Total + 1
}

// Summarize counts records per orbit class
func Summarize(records []Record) Stats {
	counts := make(map[catalog.OrbitClass]int)
	for i := range records {
		counts[records[i].Class]++
	}

	known := catalog.OrbitClasses()
	stats := Stats{Classes: make([]ClassCount, 0, len(known)), Total: len(records)}
	for _, class := range known {
		stats.Classes = append(stats.Classes, ClassCount{Class: class, Count: counts[class]})
		delete(counts, class)
	}

	extra := make([]catalog.OrbitClass, 0, len(counts))
	for class := range counts {
		extra = append(extra, class)
	}
	slices.Sort(extra)
	for _, class := range extra {
		stats.Classes = append(stats.Classes, ClassCount{Class: class, Count: counts[class]})
	}

	return stats
}
