package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/india-weather-history/internal/analysis"
	"github.com/i474232898/india-weather-history/internal/cities"
	"github.com/i474232898/india-weather-history/internal/export"
	"github.com/i474232898/india-weather-history/internal/weather"
)

var validate = validator.New()

// WeatherService is what the handlers need from weather.Service.
type WeatherService interface {
	Current(ctx context.Context, loc weather.Location) (weather.WeatherSnapshot, error)
	History(ctx context.Context, c weather.Coordinate, r weather.DateRange) (weather.ResolutionResult, error)
}

// Handler serves the weather API.
type Handler struct {
	service WeatherService
	locator *cities.Locator
	window  weather.HistoryWindow
	now     func() time.Time
}

// NewHandler creates a Handler. window is used when a request names neither
// days nor from/to; a days parameter replaces only its length.
func NewHandler(service WeatherService, locator *cities.Locator, window weather.HistoryWindow) *Handler {
	if window.Days <= 0 {
		window.Days = 30
	}
	return &Handler{
		service: service,
		locator: locator,
		window:  window,
		now:     time.Now,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", h.listCities)
	v1.Get("/weather/current", h.current)
	v1.Get("/weather/history", h.history)
	v1.Get("/weather/history/summary", h.summary)
	v1.Get("/weather/history/export", h.export)
}

func (h *Handler) listCities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must not be negative")
	}
	list := h.locator.Registry().Search(c.Query("q"), limit)
	return c.JSON(fiber.Map{
		"count":  len(list),
		"cities": list,
	})
}

func (h *Handler) current(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
	}

	loc, err := h.locator.Locate(c.UserContext(), city)
	if err != nil {
		return err
	}

	snapshot, err := h.service.Current(c.UserContext(), loc)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// historyResponse flattens the resolution result and adds the caveat shown
// when data did not come from the exact location.
type historyResponse struct {
	Location *weather.Location `json:"location,omitempty"`
	weather.ResolutionResult
	Warning string `json:"warning,omitempty"`
}

func (h *Handler) history(c *fiber.Ctx) error {
	loc, res, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(historyResponse{
		Location:         loc,
		ResolutionResult: res,
		Warning:          res.Tier.Caveat(),
	})
}

func (h *Handler) summary(c *fiber.Ctx) error {
	loc, res, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"location":   loc,
		"coordinate": res.Coordinate,
		"range":      res.Range,
		"dataTier":   res.Tier,
		"source":     res.Source,
		"warning":    res.Tier.Caveat(),
		"summary":    analysis.Summarize(res.Series),
		"changes":    analysis.DailyChanges(res.Series),
	})
}

func (h *Handler) export(c *fiber.Ctx) error {
	loc, res, err := h.resolve(c)
	if err != nil {
		return err
	}

	name := res.Coordinate.Key()
	if loc != nil {
		name = loc.Name
	}
	c.Attachment(export.FileName(name, h.now()))
	c.Set("X-Data-Tier", string(res.Tier))
	return export.WriteCSV(c, res.Series)
}

// resolve binds the history query, locates the target and runs resolution.
// loc is nil for raw coordinate requests.
func (h *Handler) resolve(c *fiber.Ctx) (*weather.Location, weather.ResolutionResult, error) {
	var q historyQuery
	if err := q.bind(c); err != nil {
		return nil, weather.ResolutionResult{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(q); err != nil {
		return nil, weather.ResolutionResult{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var (
		loc   *weather.Location
		coord weather.Coordinate
	)
	if q.City != "" {
		found, err := h.locator.Locate(c.UserContext(), q.City)
		if err != nil {
			return nil, weather.ResolutionResult{}, err
		}
		loc, coord = &found, found.Coordinate
	} else {
		coord = weather.Coordinate{Lat: q.Lat, Lon: q.Lon}
	}

	rng, err := q.dateRange(h.now(), h.window)
	if err != nil {
		return nil, weather.ResolutionResult{}, err
	}

	res, err := h.service.History(c.UserContext(), coord, rng)
	if err != nil {
		return nil, weather.ResolutionResult{}, err
	}
	return loc, res, nil
}

// historyQuery holds query parameters for the history endpoints. A request
// names either a city or a lat/lon pair, and either days or from/to.
type historyQuery struct {
	City string
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lon  float64 `validate:"gte=-180,lte=180"`
	Days int     `validate:"omitempty,gte=1,lte=366"`
	From time.Time
	To   time.Time
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	h.City = c.Query("city")

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	switch {
	case h.City != "" && (latStr != "" || lonStr != ""):
		return errors.New("use either city or lat/lon, not both")
	case h.City == "" && (latStr == "" || lonStr == ""):
		return errors.New("city or both lat and lon query parameters are required")
	}

	var err error
	if h.City == "" {
		if h.Lat, err = parseFloat(latStr, "lat"); err != nil {
			return err
		}
		if h.Lon, err = parseFloat(lonStr, "lon"); err != nil {
			return err
		}
	}

	if v := c.Query("days"); v != "" {
		if h.Days, err = strconv.Atoi(v); err != nil {
			return errors.New("days must be an integer")
		}
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if (fromStr == "") != (toStr == "") {
		return errors.New("from and to must be given together")
	}
	if fromStr == "" {
		return nil
	}
	if h.Days != 0 {
		return errors.New("use either days or from/to, not both")
	}
	if h.From, err = parseTime(fromStr); err != nil {
		return err
	}
	if h.To, err = parseTime(toStr); err != nil {
		return err
	}
	return nil
}

func (h *historyQuery) dateRange(now time.Time, window weather.HistoryWindow) (weather.DateRange, error) {
	if !h.From.IsZero() {
		rng, err := weather.NewDateRange(h.From, h.To)
		if err != nil {
			return weather.DateRange{}, err
		}
		if rng.End.After(rng.Start.AddDate(0, 0, weather.MaxRangeDays-1)) {
			return weather.DateRange{}, fmt.Errorf("%w: from/to spans more than %d days", weather.ErrInvalidRange, weather.MaxRangeDays)
		}
		return rng, nil
	}
	if h.Days != 0 {
		window.Days = h.Days
	}
	return window.Range(now)
}

func parseFloat(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return v, nil
}

// parseTime accepts a calendar date, RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(weather.DateLayout, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use YYYY-MM-DD, RFC3339 or unix seconds")
}
