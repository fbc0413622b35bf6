package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"natal-chart-service/internal/api/dto"
	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/platform/obs"
	"natal-chart-service/internal/ports"
	"natal-chart-service/internal/services"
)

// ChartHandler exposes natal chart computation over HTTP.
type ChartHandler struct {
	Ephemeris     ports.EphemerisProvider
	ZoneLookup    ports.ZoneLookup
	DefaultSystem domain.HouseSystem
	Metrics       *obs.Metrics
}

// Natal computes and returns a natal chart for one birth event.
func (h *ChartHandler) Natal(c *gin.Context) {
	start := time.Now()

	var req dto.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Metrics.IncChart(obs.OutcomeMalformed)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: "invalid json body"})
		return
	}

	if req.Date == "" || req.Time == "" || req.Lat == nil || req.Lon == nil {
		h.Metrics.IncChart(obs.OutcomeMalformed)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: "date, time, lat and lon are required"})
		return
	}

	system := h.DefaultSystem
	if req.HouseSystem != "" {
		parsed, err := domain.ParseHouseSystem(req.HouseSystem)
		if err != nil {
			h.Metrics.IncChart(obs.OutcomeMalformed)
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: "houseSystem must be whole-sign or placidus"})
			return
		}
		system = parsed
	}

	chart, err := services.ComputeChart(c.Request.Context(), services.ChartRequest{
		Date:                  req.Date,
		Time:                  req.Time,
		Coordinate:            domain.GeoCoordinate{Lat: *req.Lat, Lon: *req.Lon},
		FallbackOffsetMinutes: req.TimezoneOffsetMinutes,
		System:                system,
	}, h.Ephemeris, h.ZoneLookup)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}

	h.Metrics.IncChart(obs.OutcomeOK)
	if chart.Timezone.IsFallback {
		h.Metrics.IncTimezoneFallback()
	}
	h.Metrics.ObserveChartLatency(time.Since(start))

	c.JSON(http.StatusOK, toChartResponse(chart))
}

// writeComputeError maps pipeline failures onto the error contract. Client
// mistakes carry the cause; upstream and internal failures do not leak it.
func (h *ChartHandler) writeComputeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		h.Metrics.IncChart(obs.OutcomeMalformed)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: true, Message: err.Error()})

	case errors.Is(err, domain.ErrCollaboratorUnavailable):
		h.Metrics.IncChart(obs.OutcomeCollaboratorError)
		h.Metrics.IncCollaboratorError("ephemeris")
		log.Printf("chart failed: %v", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: true, Message: "ephemeris service unavailable"})

	case errors.Is(err, domain.ErrTimezoneResolution):
		h.Metrics.IncChart(obs.OutcomeTimezoneError)
		log.Printf("chart failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "timezone resolution failed"})

	default:
		h.Metrics.IncChart(obs.OutcomeInternalError)
		log.Printf("chart failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: true, Message: "internal server error"})
	}
}

func toChartResponse(chart *domain.NatalChart) dto.ChartResponse {
	houses := make([]dto.HouseResponse, 0, len(chart.Houses))
	for _, cusp := range chart.Houses {
		houses = append(houses, dto.HouseResponse{
			House:         cusp.House,
			CuspLongitude: cusp.Longitude,
			Sign:          cusp.Sign,
		})
	}

	planets := make(map[string]dto.PlanetResponse, len(chart.Bodies))
	for body, placement := range chart.Bodies {
		planets[body.String()] = dto.PlanetResponse{
			Longitude:    placement.Longitude,
			Sign:         placement.Position.Sign,
			DegreeInSign: placement.Position.DegreeInSign,
			House:        placement.House,
		}
	}

	return dto.ChartResponse{
		Ascendant: dto.AscendantResponse{
			Longitude:    chart.Ascendant.Longitude,
			Sign:         chart.Ascendant.Position.Sign,
			DegreeInSign: chart.Ascendant.Position.DegreeInSign,
		},
		Houses:      houses,
		Planets:     planets,
		HouseSystem: chart.System.String(),
		Timezone: dto.TimezoneResponse{
			Name:          chart.Timezone.Name,
			OffsetMinutes: chart.Timezone.OffsetMinutes,
			Fallback:      chart.Timezone.IsFallback,
		},
		Moment: dto.MomentResponse{
			Local:     chart.Local,
			UTC:       chart.UTC,
			JulianDay: chart.JulianDay,
		},
	}
}
