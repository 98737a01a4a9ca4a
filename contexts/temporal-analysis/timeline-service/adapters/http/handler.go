package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"senkron/contexts/temporal-analysis/timeline-service/application"
	domainerrors "senkron/contexts/temporal-analysis/timeline-service/domain/errors"
	"senkron/contexts/temporal-analysis/timeline-service/ports"
	httptransport "senkron/contexts/temporal-analysis/timeline-service/transport/http"
)

type Handler struct {
	Service application.Service
	Runs    ports.RunRepository
	Logger  *slog.Logger
}

func (h Handler) DiscoverTriggersHandler(
	ctx context.Context,
	req httptransport.DiscoverTriggersRequest,
) (httptransport.TriggerDiscoveryResponse, error) {
	discover, err := buildDiscoverRequest(req)
	if err != nil {
		return httptransport.TriggerDiscoveryResponse{}, err
	}

	patterns, err := h.Service.DiscoverTriggers(ctx, discover)
	if err != nil {
		return httptransport.TriggerDiscoveryResponse{}, err
	}

	resp := httptransport.TriggerDiscoveryResponse{Status: "success"}
	resp.Data.Count = len(patterns)
	resp.Data.Patterns = make([]httptransport.MetaPatternDTO, 0, len(patterns))
	for _, pattern := range patterns {
		resp.Data.Patterns = append(resp.Data.Patterns, httptransport.MetaPatternDTO{
			Name:        pattern.Name,
			Score:       pattern.Score,
			Description: pattern.Description,
			Nodes:       pattern.Nodes,
			Links:       pattern.Links,
		})
	}
	return resp, nil
}

func (h Handler) AnalyzeClustersHandler(
	ctx context.Context,
	req httptransport.DiscoverTriggersRequest,
) (httptransport.ClusterAnalysisResponse, error) {
	discover, err := buildDiscoverRequest(req)
	if err != nil {
		return httptransport.ClusterAnalysisResponse{}, err
	}

	summary, err := h.Service.AnalyzeClusters(ctx, discover)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoPatterns) {
			// Empty result is data, not a failure.
			return httptransport.ClusterAnalysisResponse{Status: "no_data"}, nil
		}
		return httptransport.ClusterAnalysisResponse{}, err
	}

	resp := httptransport.ClusterAnalysisResponse{Status: "success"}
	resp.Data.TotalPatterns = summary.TotalPatterns
	resp.Data.HighScorePatterns = summary.HighScore
	resp.Data.MediumScorePatterns = summary.MediumScore
	resp.Data.LowScorePatterns = summary.LowScore
	resp.Data.AverageScore = summary.AverageScore
	resp.Data.MostFrequentNodes = make([]httptransport.NodeFrequencyDTO, 0, len(summary.MostFrequentNodes))
	for _, node := range summary.MostFrequentNodes {
		resp.Data.MostFrequentNodes = append(resp.Data.MostFrequentNodes, httptransport.NodeFrequencyDTO{
			NodeID: node.NodeID,
			Count:  node.Count,
		})
	}
	resp.Data.TopPatterns = make([]httptransport.PatternDigestDTO, 0, len(summary.TopPatterns))
	for _, pattern := range summary.TopPatterns {
		resp.Data.TopPatterns = append(resp.Data.TopPatterns, httptransport.PatternDigestDTO{
			Name:        pattern.Name,
			Score:       pattern.Score,
			Description: pattern.Description,
		})
	}
	return resp, nil
}

func (h Handler) ListScanRunsHandler(ctx context.Context, limit int) (httptransport.ScanRunsResponse, error) {
	resp := httptransport.ScanRunsResponse{Status: "success", Data: []httptransport.ScanRunDTO{}}
	if h.Runs == nil {
		return resp, nil
	}
	runs, err := h.Runs.ListRuns(ctx, limit)
	if err != nil {
		return httptransport.ScanRunsResponse{}, err
	}
	for _, run := range runs {
		resp.Data = append(resp.Data, httptransport.ScanRunDTO{
			RunID:        run.RunID,
			WindowAStart: run.WindowAStart.UTC().Format(time.RFC3339),
			WindowAEnd:   run.WindowAEnd.UTC().Format(time.RFC3339),
			WindowBStart: run.WindowBStart.UTC().Format(time.RFC3339),
			WindowBEnd:   run.WindowBEnd.UTC().Format(time.RFC3339),
			PatternCount: run.PatternCount,
			TopScore:     run.TopScore,
			CompletedAt:  run.CompletedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func buildDiscoverRequest(req httptransport.DiscoverTriggersRequest) (ports.DiscoverRequest, error) {
	windowAStart, err := parseDate(req.WindowAStart)
	if err != nil {
		return ports.DiscoverRequest{}, domainerrors.ErrInvalidWindow
	}
	windowAEnd, err := parseDate(req.WindowAEnd)
	if err != nil {
		return ports.DiscoverRequest{}, domainerrors.ErrInvalidWindow
	}
	windowBStart, err := parseDate(req.WindowBStart)
	if err != nil {
		return ports.DiscoverRequest{}, domainerrors.ErrInvalidWindow
	}
	windowBEnd, err := parseDate(req.WindowBEnd)
	if err != nil {
		return ports.DiscoverRequest{}, domainerrors.ErrInvalidWindow
	}
	return ports.DiscoverRequest{
		WindowAStart: windowAStart,
		WindowAEnd:   windowAEnd,
		WindowBStart: windowBStart,
		WindowBEnd:   windowBEnd,
		MinScore:     req.MinScore,
		Limit:        req.Limit,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse("2006-01-02", raw)
}
