package loader

import (
	"time"

	"github.com/aiyaulmo/verksamhetscykel/pkg/model"
)

// Documented configuration defaults. Any field missing from the document's
// config block is silently replaced by the value here; nothing in the
// pipeline fails on an incomplete configuration.
const (
	DefaultRingCount   = 4
	DefaultInnerRadius = 110.0
	DefaultOuterRadius = 310.0
	DefaultMonthInner  = 310.0
	DefaultMonthOuter  = 350.0

	DefaultLabelOffset  = 430.0
	DefaultLabelSpacing = 26.0
	DefaultLabelRadius  = 370.0
	DefaultWrapWidth    = 150.0

	DefaultElbowRadius      = 390.0
	DefaultConnectorPadding = 8.0
)

// DefaultCurves are the per-season connector curve factors: strongest bend
// around the winter months where the wheel is densest, nearly straight in
// midsummer.
var DefaultCurves = model.SeasonCurves{
	Midwinter: 0.85,
	Equinox:   0.6,
	Shoulder:  0.45,
	Midsummer: 0.3,
}

// DefaultPeriodDividers opens four quarterly periods at weeks 1, 14, 27
// and 40; the last one wraps across year-end.
var DefaultPeriodDividers = []int{1, 14, 27, 40}

// DefaultRingColors is used for rings without a color table entry.
var DefaultRingColors = map[model.Ring]string{
	model.RingLangtidsplanering:          "#355070",
	model.RingPlanering:                  "#6d597a",
	model.RingGenomforandeOchUppfoljning: "#b56576",
	model.RingUppfoljningOchAnalys:       "#e56b6f",
	model.RingManad:                      "#eaac8b",
}

// DefaultPeriodColors cycles over the period arcs.
var DefaultPeriodColors = []string{"#84a59d", "#f6bd60", "#f28482", "#a3b18a"}

// ApplyConfigDefaults fills every zero-valued configuration field with its
// documented default.
func ApplyConfigDefaults(cfg *model.WheelConfig) {
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year()
	}
	if cfg.RingCount == 0 {
		cfg.RingCount = DefaultRingCount
	}
	if cfg.InnerRadius == 0 {
		cfg.InnerRadius = DefaultInnerRadius
	}
	if cfg.OuterRadius == 0 {
		cfg.OuterRadius = DefaultOuterRadius
	}
	if cfg.MonthInner == 0 {
		cfg.MonthInner = DefaultMonthInner
	}
	if cfg.MonthOuter == 0 {
		cfg.MonthOuter = DefaultMonthOuter
	}
	if len(cfg.PeriodDividers) == 0 {
		cfg.PeriodDividers = append([]int(nil), DefaultPeriodDividers...)
	}
	if cfg.LabelOffsetLeft == 0 {
		cfg.LabelOffsetLeft = DefaultLabelOffset
	}
	if cfg.LabelOffsetRight == 0 {
		cfg.LabelOffsetRight = DefaultLabelOffset
	}
	if cfg.LabelSpacingLeft == 0 {
		cfg.LabelSpacingLeft = DefaultLabelSpacing
	}
	if cfg.LabelSpacingRight == 0 {
		cfg.LabelSpacingRight = DefaultLabelSpacing
	}
	if cfg.LabelRadius == 0 {
		cfg.LabelRadius = DefaultLabelRadius
	}
	if cfg.LabelWrapWidth == 0 {
		cfg.LabelWrapWidth = DefaultWrapWidth
	}
	if cfg.ElbowRadius == 0 {
		cfg.ElbowRadius = DefaultElbowRadius
	}
	if cfg.ConnectorPadding == 0 {
		cfg.ConnectorPadding = DefaultConnectorPadding
	}
	if cfg.Curves == (model.SeasonCurves{}) {
		cfg.Curves = DefaultCurves
	}
	if cfg.RingColors == nil {
		cfg.RingColors = make(map[model.Ring]string)
	}
	for ring, color := range DefaultRingColors {
		if _, ok := cfg.RingColors[ring]; !ok {
			cfg.RingColors[ring] = color
		}
	}
	if len(cfg.PeriodColors) == 0 {
		cfg.PeriodColors = append([]string(nil), DefaultPeriodColors...)
	}
}
