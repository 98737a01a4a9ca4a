package services

import (
	"fmt"
	"sort"
	"time"

	"senkron/contexts/temporal-analysis/timeline-service/domain/entities"
)

// Config carries the trigger-discovery calibration constants. All values
// are tunable; the defaults reproduce the production calibration.
type Config struct {
	// MinScore is the acceptance threshold for a candidate pair. Zero is
	// a real value (accept every qualifying pair), so it is never
	// defaulted here; constructors pick the default for unset configs.
	MinScore float64
	// SimilarityFloor rejects low-similarity pairs before full scoring.
	SimilarityFloor float64
	// CategoryBonus is granted when both events share a non-empty category.
	CategoryBonus float64

	// Maturation window: causal lags inside [MaturationMinDays,
	// MaturationMaxDays] get full delay credibility. Shorter lags ramp up
	// linearly; longer lags decay over DecayHorizonDays down to DecayFloor.
	MaturationMinDays int
	MaturationMaxDays int
	DecayHorizonDays  int
	DecayFloor        float64

	// Score weights, expected to sum to 1.0.
	AstroWeight    float64
	DelayWeight    float64
	CategoryWeight float64

	// TopN truncates the ranked output. Zero keeps the full result.
	TopN int
}

func DefaultConfig() Config {
	return Config{
		MinScore:          0.3,
		SimilarityFloor:   0.1,
		CategoryBonus:     0.2,
		MaturationMinDays: 7,
		MaturationMaxDays: 90,
		DecayHorizonDays:  365,
		DecayFloor:        0.1,
		AstroWeight:       0.6,
		DelayWeight:       0.3,
		CategoryWeight:    0.1,
	}
}

// withDefaults fills unset structural fields so partially-populated
// configs stay usable. MinScore is left alone: its zero value is
// meaningful and distinguishing set-to-zero from unset is the caller's job.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SimilarityFloor <= 0 {
		c.SimilarityFloor = def.SimilarityFloor
	}
	if c.CategoryBonus <= 0 {
		c.CategoryBonus = def.CategoryBonus
	}
	if c.MaturationMinDays <= 0 {
		c.MaturationMinDays = def.MaturationMinDays
	}
	if c.MaturationMaxDays <= 0 {
		c.MaturationMaxDays = def.MaturationMaxDays
	}
	if c.DecayHorizonDays <= 0 {
		c.DecayHorizonDays = def.DecayHorizonDays
	}
	if c.DecayFloor <= 0 {
		c.DecayFloor = def.DecayFloor
	}
	if c.AstroWeight <= 0 && c.DelayWeight <= 0 && c.CategoryWeight <= 0 {
		c.AstroWeight = def.AstroWeight
		c.DelayWeight = def.DelayWeight
		c.CategoryWeight = def.CategoryWeight
	}
	return c
}

// DiscoverTriggers scans every ordered pair (a in windowA, b in windowB)
// for forward-in-time causal candidates and returns the accepted pairs as
// meta-patterns, sorted descending by score. Ties keep enumeration order,
// so the output is deterministic for identical inputs.
//
// The scan is O(|A|*|B|); windows are expected to stay small because they
// are bounded by a date range over a modest event catalog.
func DiscoverTriggers(windowA, windowB []entities.EventRecord, cfg Config) []entities.MetaPattern {
	patterns := []entities.MetaPattern{}
	if len(windowA) == 0 || len(windowB) == 0 {
		return patterns
	}
	cfg = cfg.withDefaults()

	for _, eventA := range windowA {
		for _, eventB := range windowB {
			delay := daysBetween(eventA.Date, eventB.Date)
			if delay <= 0 {
				// Causal links only run forward in time.
				continue
			}

			astroSim := SignatureSimilarity(eventA.AstroSignature, eventB.AstroSignature)
			if astroSim < cfg.SimilarityFloor {
				continue
			}

			categoryBonus := 0.0
			if eventA.Category() != "" && eventA.Category() == eventB.Category() {
				categoryBonus = cfg.CategoryBonus
			}

			delayConsistency := delayConsistency(delay, cfg)

			totalScore := cfg.AstroWeight*astroSim +
				cfg.DelayWeight*delayConsistency +
				cfg.CategoryWeight*categoryBonus
			if totalScore < cfg.MinScore {
				continue
			}

			link, err := entities.NewCausalLink(eventA.ID, eventB.ID, totalScore, delay, map[string]float64{
				"astro_similarity":  astroSim,
				"delay_consistency": delayConsistency,
				"category_bonus":    categoryBonus,
			})
			if err != nil {
				continue
			}

			category := eventA.Category()
			if category == "" {
				category = "n/a"
			}
			pattern, err := entities.NewMetaPattern(
				fmt.Sprintf("%s → %s", eventA.Label, eventB.Label),
				totalScore,
				fmt.Sprintf("astro similarity: %.2f, delay: %d days, category: %s", astroSim, delay, category),
				[]string{eventA.ID, eventB.ID},
				[]string{fmt.Sprintf("%s->%s", link.SrcID, link.DstID)},
			)
			if err != nil {
				continue
			}
			patterns = append(patterns, pattern)
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Score > patterns[j].Score
	})

	if cfg.TopN > 0 && len(patterns) > cfg.TopN {
		patterns = patterns[:cfg.TopN]
	}
	return patterns
}

// delayConsistency weighs how credible a causal lag of the given day
// count is: full credibility inside the maturation window, a linear ramp
// below it, and a floored linear decay past it.
func delayConsistency(delayDays int, cfg Config) float64 {
	switch {
	case delayDays < cfg.MaturationMinDays:
		return float64(delayDays) / float64(cfg.MaturationMinDays)
	case delayDays > cfg.MaturationMaxDays:
		decayed := 1.0 - float64(delayDays-cfg.MaturationMaxDays)/float64(cfg.DecayHorizonDays)
		if decayed < cfg.DecayFloor {
			return cfg.DecayFloor
		}
		return decayed
	default:
		return 1.0
	}
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
