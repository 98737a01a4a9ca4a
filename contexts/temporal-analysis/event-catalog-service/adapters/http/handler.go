package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"senkron/contexts/temporal-analysis/event-catalog-service/application"
	domainerrors "senkron/contexts/temporal-analysis/event-catalog-service/domain/errors"
	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
	httptransport "senkron/contexts/temporal-analysis/event-catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListEventsHandler(
	ctx context.Context,
	query httptransport.ListEventsQuery,
) (httptransport.ListEventsResponse, error) {
	filter := ports.ListFilter{
		Category:  query.Category,
		MinWeight: query.MinWeight,
		Limit:     query.Limit,
	}
	if query.From != "" {
		from, err := time.Parse("2006-01-02", query.From)
		if err != nil {
			return httptransport.ListEventsResponse{}, domainerrors.ErrInvalidFilter
		}
		filter.From = from
	}
	if query.To != "" {
		to, err := time.Parse("2006-01-02", query.To)
		if err != nil {
			return httptransport.ListEventsResponse{}, domainerrors.ErrInvalidFilter
		}
		filter.To = to
	}

	events, err := h.Service.ListEvents(ctx, filter)
	if err != nil {
		return httptransport.ListEventsResponse{}, err
	}

	resp := httptransport.ListEventsResponse{Status: "success"}
	resp.Data.Count = len(events)
	resp.Data.Events = make([]httptransport.CatalogEventDTO, 0, len(events))
	for _, event := range events {
		resp.Data.Events = append(resp.Data.Events, httptransport.CatalogEventDTO{
			ID:             event.ID,
			Date:           event.Date.Format("2006-01-02"),
			Title:          event.Title,
			Category:       event.Category,
			Description:    event.Description,
			AstroSignature: event.AstroSignature,
			Weight:         event.Weight,
		})
	}
	return resp, nil
}

func (h Handler) ImportBatchHandler(ctx context.Context, payload []byte) (httptransport.ImportResponse, error) {
	report, err := h.Service.ImportBatch(ctx, payload)
	if err != nil {
		return httptransport.ImportResponse{}, err
	}

	resp := httptransport.ImportResponse{Status: "success"}
	resp.Data.Imported = report.Imported
	resp.Data.Skipped = report.Skipped
	resp.Data.SkipReasons = report.SkipReasons
	resp.Data.CatalogTotal = report.CatalogTotal
	return resp, nil
}
