// Package analysis summarises committed measurements for reports.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/pkg/geometry"
)

// Record is one committed measurement
type Record struct {
	Index    int
	Start    geometry.Vector3
	End      geometry.Vector3
	Length   float64 // raw distance
	Snapped  float64
	Label    string
	Tier     measurement.LabelTier
	Rotation float64 // label rotation in degrees
}

// Summary contains aggregate values over a set of records
type Summary struct {
	Count         int
	TotalLength   float64
	TotalSnapped  float64
	MinLength     float64
	MaxLength     float64
	AvgLength     float64
	BoundingBox   geometry.BoundingBox
	TierHistogram map[measurement.LabelTier]int
}

// FromMeasurements converts measurements in creation order
func FromMeasurements(ms []*measurement.Measurement) []Record {
	records := make([]Record, 0, len(ms))
	for i, m := range ms {
		a := m.Annotation
		records = append(records, Record{
			Index:    i + 1,
			Start:    a.Start,
			End:      a.End,
			Length:   a.RawDistance,
			Snapped:  a.Snapped,
			Label:    a.Text,
			Tier:     a.Label.Tier,
			Rotation: a.Label.Rotation * 180 / math.Pi,
		})
	}
	return records
}

// Summarize computes aggregate values
func Summarize(records []Record) Summary {
	s := Summary{
		Count:         len(records),
		BoundingBox:   geometry.NewBoundingBox(),
		TierHistogram: make(map[measurement.LabelTier]int),
	}
	if len(records) == 0 {
		return s
	}

	s.MinLength = math.MaxFloat64
	for _, r := range records {
		s.TotalLength += r.Length
		s.TotalSnapped += r.Snapped
		if r.Length < s.MinLength {
			s.MinLength = r.Length
		}
		if r.Length > s.MaxLength {
			s.MaxLength = r.Length
		}
		s.BoundingBox.Extend(r.Start)
		s.BoundingBox.Extend(r.End)
		s.TierHistogram[r.Tier]++
	}
	s.AvgLength = s.TotalLength / float64(s.Count)
	return s
}

// FindByLength finds all records within a length range
func FindByLength(records []Record, minLength, maxLength float64) []Record {
	var out []Record
	for _, r := range records {
		if r.Length >= minLength && r.Length <= maxLength {
			out = append(out, r)
		}
	}
	return out
}

// Longest returns the n longest records
func Longest(records []Record, n int) []Record {
	return sortedPrefix(records, n, func(a, b Record) bool { return a.Length > b.Length })
}

// Shortest returns the n shortest records
func Shortest(records []Record, n int) []Record {
	return sortedPrefix(records, n, func(a, b Record) bool { return a.Length < b.Length })
}

func sortedPrefix(records []Record, n int, less func(a, b Record) bool) []Record {
	out := make([]Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	if n > len(out) {
		n = len(out)
	}
	if n < 0 {
		n = 0
	}
	return out[:n]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
