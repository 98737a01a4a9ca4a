package services

import (
	"sort"

	"senkron/contexts/temporal-analysis/timeline-service/domain/entities"
	domainerrors "senkron/contexts/temporal-analysis/timeline-service/domain/errors"
)

const (
	highScoreFloor   = 0.7
	mediumScoreFloor = 0.4

	defaultTopNodes    = 5
	defaultTopPatterns = 3
)

type NodeFrequency struct {
	NodeID string
	Count  int
}

type PatternDigest struct {
	Name        string
	Score       float64
	Description string
}

// ClusterSummary aggregates a discovered pattern list into score tiers,
// recurring-node frequencies, and a short top-pattern projection.
type ClusterSummary struct {
	TotalPatterns     int
	HighScore         int
	MediumScore       int
	LowScore          int
	AverageScore      float64
	MostFrequentNodes []NodeFrequency
	TopPatterns       []PatternDigest
}

// AnalyzePatternClusters buckets patterns into high (>0.7), medium
// (0.4..0.7) and low (<0.4) tiers and reports the topNodes most frequent
// node ids (first-seen order breaks ties). The input order is preserved
// for the top-pattern projection, so callers should pass the ranked
// output of DiscoverTriggers. Empty input yields ErrNoPatterns.
func AnalyzePatternClusters(patterns []entities.MetaPattern, topNodes int) (ClusterSummary, error) {
	if len(patterns) == 0 {
		return ClusterSummary{}, domainerrors.ErrNoPatterns
	}
	if topNodes <= 0 {
		topNodes = defaultTopNodes
	}

	summary := ClusterSummary{TotalPatterns: len(patterns)}

	scoreSum := 0.0
	frequency := map[string]int{}
	firstSeen := map[string]int{}
	order := 0

	for _, pattern := range patterns {
		scoreSum += pattern.Score
		switch {
		case pattern.Score > highScoreFloor:
			summary.HighScore++
		case pattern.Score >= mediumScoreFloor:
			summary.MediumScore++
		default:
			summary.LowScore++
		}
		for _, node := range pattern.Nodes {
			if _, seen := firstSeen[node]; !seen {
				firstSeen[node] = order
				order++
			}
			frequency[node]++
		}
	}
	summary.AverageScore = scoreSum / float64(len(patterns))

	nodes := make([]NodeFrequency, 0, len(frequency))
	for node, count := range frequency {
		nodes = append(nodes, NodeFrequency{NodeID: node, Count: count})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Count == nodes[j].Count {
			return firstSeen[nodes[i].NodeID] < firstSeen[nodes[j].NodeID]
		}
		return nodes[i].Count > nodes[j].Count
	})
	if len(nodes) > topNodes {
		nodes = nodes[:topNodes]
	}
	summary.MostFrequentNodes = nodes

	top := len(patterns)
	if top > defaultTopPatterns {
		top = defaultTopPatterns
	}
	summary.TopPatterns = make([]PatternDigest, 0, top)
	for _, pattern := range patterns[:top] {
		summary.TopPatterns = append(summary.TopPatterns, PatternDigest{
			Name:        pattern.Name,
			Score:       pattern.Score,
			Description: pattern.Description,
		})
	}
	return summary, nil
}
