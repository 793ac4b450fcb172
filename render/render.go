// Package render derives presentational fields from advisory results. All
// functions are pure: no network, no clock, no side effects.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"farmportal.app/models"
)

var monthNames = [...]string{
	"",
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// QualityBand is a presentation-only score classification. It never feeds
// back into ranking.
type QualityBand string

const (
	BandExcellent QualityBand = "excellent"
	BandGood      QualityBand = "good"
	BandAverage   QualityBand = "average"
	BandPoor      QualityBand = "poor"
)

// FormatMonth maps 1-12 to the English month name. Values outside that range
// pass through as the raw number, matching the portal's historical display
// behavior for malformed backend data.
func FormatMonth(n int) string {
	if n < 1 || n > 12 {
		return strconv.Itoa(n)
	}
	return monthNames[n]
}

// ScorePercent clamps score into [0,max] and returns it as a percentage.
// Out-of-range scores never raise; they saturate at the bounds.
func ScorePercent(score, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if score < 0 {
		score = 0
	}
	if score > max {
		score = max
	}
	return score / max * 100
}

// RankLabel derives a crop's displayed rank purely from its position in the
// backend-supplied sequence. Scores are never consulted: the backend's
// ordering is authoritative.
func RankLabel(index int) string {
	return "#" + strconv.Itoa(index+1)
}

// ScoreQualityBand buckets a score for display
func ScoreQualityBand(score float64) QualityBand {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandAverage
	default:
		return BandPoor
	}
}

// CropCard is one crop recommendation shaped for display
type CropCard struct {
	Rank         string      `json:"rank,omitempty"`
	Name         string      `json:"name"`
	Score        string      `json:"score"`
	ScorePercent float64     `json:"scorePercent"`
	Quality      QualityBand `json:"quality"`
	Seasons      string      `json:"seasons"`
	Water        string      `json:"water"`
	Breakdown    []string    `json:"breakdown"`
}

// AdvisoryView is an AdvisoryResult shaped for display
type AdvisoryView struct {
	Location    string     `json:"location"`
	SoilType    string     `json:"soilType"`
	SowingMonth string     `json:"sowingMonth"`
	Summary     string     `json:"summary"`
	AvgTemp     string     `json:"avgTemp"`
	AvgHumidity string     `json:"avgHumidity"`
	TotalRain   string     `json:"totalRain"`
	TopCrops    []CropCard `json:"topCrops"`
	Alternates  []CropCard `json:"alternates"`
}

// BuildAdvisoryView maps a backend result into display fields. Crop order is
// preserved verbatim; only labels and units are derived.
func BuildAdvisoryView(result *models.AdvisoryResult) *AdvisoryView {
	view := &AdvisoryView{
		Location:    result.Location,
		SoilType:    result.SoilType,
		SowingMonth: FormatMonth(result.SowingMonth),
		Summary:     result.Advisory.Summary,
		AvgTemp:     fmt.Sprintf("%.1f°C", result.Advisory.AvgTemp),
		AvgHumidity: fmt.Sprintf("%.1f%%", result.Advisory.AvgHumidity),
		TotalRain:   fmt.Sprintf("%.1f mm", result.Advisory.TotalRain),
		TopCrops:    make([]CropCard, 0, len(result.Advisory.TopRecommendations)),
		Alternates:  make([]CropCard, 0, len(result.Advisory.AlternateOptions)),
	}

	for i, crop := range result.Advisory.TopRecommendations {
		card := buildCropCard(crop)
		card.Rank = RankLabel(i)
		view.TopCrops = append(view.TopCrops, card)
	}
	for _, crop := range result.Advisory.AlternateOptions {
		view.Alternates = append(view.Alternates, buildCropCard(crop))
	}
	return view
}

func buildCropCard(crop models.CropScore) CropCard {
	seasons := "N/A"
	water := "N/A"
	if crop.Meta != nil {
		if len(crop.Meta.Seasons) > 0 {
			seasons = strings.Join(crop.Meta.Seasons, ", ")
		}
		if crop.Meta.WaterRequirement != "" {
			water = crop.Meta.WaterRequirement
		}
	}

	return CropCard{
		Name:         crop.Name,
		Score:        fmt.Sprintf("%g/100", crop.TotalScore),
		ScorePercent: ScorePercent(crop.TotalScore, 100),
		Quality:      ScoreQualityBand(crop.TotalScore),
		Seasons:      seasons,
		Water:        water,
		Breakdown:    crop.Breakdown,
	}
}
