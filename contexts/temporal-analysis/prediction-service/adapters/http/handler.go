package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"senkron/contexts/temporal-analysis/prediction-service/application"
	domainerrors "senkron/contexts/temporal-analysis/prediction-service/domain/errors"
	"senkron/contexts/temporal-analysis/prediction-service/domain/services"
	httptransport "senkron/contexts/temporal-analysis/prediction-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// positionLayouts accepted on the positions endpoint.
var positionLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

func (h Handler) PositionsHandler(ctx context.Context, rawDate string) (httptransport.PositionsResponse, error) {
	when := time.Now().UTC()
	if rawDate != "" {
		parsed, ok := parseWhen(rawDate)
		if !ok {
			return httptransport.PositionsResponse{}, domainerrors.ErrInvalidDate
		}
		when = parsed
	}

	positions, err := h.Service.Positions(ctx, when)
	if err != nil {
		return httptransport.PositionsResponse{}, err
	}

	resp := httptransport.PositionsResponse{Status: "success"}
	resp.Data.Timestamp = when.UTC().Format(time.RFC3339)
	resp.Data.Positions = make([]httptransport.BodyPositionDTO, 0, len(positions))
	for _, position := range positions {
		resp.Data.Positions = append(resp.Data.Positions, httptransport.BodyPositionDTO{
			Name:       position.Name,
			Longitude:  position.Longitude,
			Retrograde: position.Retrograde,
			Zodiac: httptransport.ZodiacDTO{
				Sign:      position.Zodiac.Sign,
				SignIndex: position.Zodiac.SignIndex,
				DegInSign: position.Zodiac.DegInSign,
				DMS: httptransport.DMSDTO{
					Degrees: position.Zodiac.DegInSignDMS.Degrees,
					Minutes: position.Zodiac.DegInSignDMS.Minutes,
					Seconds: position.Zodiac.DegInSignDMS.Seconds,
				},
			},
		})
	}
	return resp, nil
}

// HousesHandler lays out the twelve whole-sign houses from an ascendant
// longitude. The ascendant is required; any real degree value is legal.
func (h Handler) HousesHandler(rawAscendant string) (httptransport.HousesResponse, error) {
	ascendant, err := strconv.ParseFloat(rawAscendant, 64)
	if err != nil {
		return httptransport.HousesResponse{}, domainerrors.ErrInvalidDegrees
	}

	resp := httptransport.HousesResponse{Status: "success"}
	resp.Data.Ascendant = ascendant
	resp.Data.Houses = h.Service.Houses(ascendant)
	return resp, nil
}

func (h Handler) UnifiedScoreHandler(
	ctx context.Context,
	req httptransport.UnifiedScoreRequest,
) (httptransport.UnifiedScoreResponse, error) {
	start, ok := parseWhen(req.StartDate)
	if !ok {
		return httptransport.UnifiedScoreResponse{}, domainerrors.ErrInvalidRange
	}
	end, ok := parseWhen(req.EndDate)
	if !ok {
		return httptransport.UnifiedScoreResponse{}, domainerrors.ErrInvalidRange
	}

	unified := application.UnifiedRequest{
		Start:     start,
		End:       end,
		Energy:    req.Energy,
		GravShift: req.GravShift,
		Distance:  req.Distance,
	}
	if req.AstroW != nil || req.QuantW != nil {
		weights := services.DefaultFusionWeights()
		if req.AstroW != nil {
			weights.Astro = *req.AstroW
		}
		if req.QuantW != nil {
			weights.Quantum = *req.QuantW
		}
		unified.Weights = &weights
	}

	result, err := h.Service.UnifiedScore(ctx, unified)
	if err != nil {
		return httptransport.UnifiedScoreResponse{}, err
	}

	resp := httptransport.UnifiedScoreResponse{Status: "success"}
	resp.Data.Astro = result.AstroScore
	resp.Data.Quant = result.QuantScore
	resp.Data.Final = result.FinalScore
	resp.Data.AstroWeight = result.Weights.Astro
	resp.Data.QuantWeight = result.Weights.Quantum
	resp.Data.WindowEvents = result.WindowEvents
	return resp, nil
}

func parseWhen(raw string) (time.Time, bool) {
	for _, layout := range positionLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
