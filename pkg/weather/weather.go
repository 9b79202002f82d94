// Package weather reads current conditions and a five day outlook from the
// OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

var ErrNotConfigured = errors.New("weather api key not configured")

const forecastDays = 5

type Current struct {
	Location      string  `json:"location"`
	Temperature   int     `json:"temperature"`
	Description   string  `json:"description"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	Cloudiness    int     `json:"cloudiness"`
	Visibility    float64 `json:"visibility_km"`
	UVIndex       float64 `json:"uv_index"`
	Precipitation float64 `json:"precipitation"`
}

type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Day struct {
	Date          string    `json:"date"`
	Temperature   TempRange `json:"temperature"`
	Description   string    `json:"description"`
	Humidity      int       `json:"humidity"`
	Precipitation float64   `json:"precipitation"`
	WindSpeed     float64   `json:"wind_speed"`
}

type Client struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func New(endpoint, key string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		httpc:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool { return c.key != "" }

type owmMain struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

type owmVolume struct {
	H1 float64 `json:"1h"`
	H3 float64 `json:"3h"`
}

type owmDesc struct {
	Description string `json:"description"`
}

type owmWind struct {
	Speed float64 `json:"speed"`
}

type owmCurrent struct {
	Name    string                   `json:"name"`
	Sys     struct{ Country string } `json:"sys"`
	Main    owmMain                  `json:"main"`
	Weather []owmDesc                `json:"weather"`
	Wind    owmWind                  `json:"wind"`
	Clouds  struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility float64    `json:"visibility"`
	Rain       *owmVolume `json:"rain"`
	Snow       *owmVolume `json:"snow"`
}

type owmForecast struct {
	List []struct {
		Dt      int64      `json:"dt"`
		Main    owmMain    `json:"main"`
		Weather []owmDesc  `json:"weather"`
		Wind    owmWind    `json:"wind"`
		Rain    *owmVolume `json:"rain"`
		Snow    *owmVolume `json:"snow"`
	} `json:"list"`
}

func (c *Client) Current(ctx context.Context, location string) (*Current, error) {
	var raw owmCurrent
	if err := c.get(ctx, "/data/2.5/weather", location, nil, &raw); err != nil {
		return nil, err
	}
	out := &Current{
		Location:    raw.Name + ", " + raw.Sys.Country,
		Temperature: int(math.Round(raw.Main.Temp)),
		Description: firstDesc(raw.Weather),
		Humidity:    int(raw.Main.Humidity),
		Pressure:    int(raw.Main.Pressure),
		WindSpeed:   raw.Wind.Speed,
		Cloudiness:  raw.Clouds.All,
		Visibility:  raw.Visibility / 1000,
	}
	switch {
	case raw.Rain != nil && raw.Rain.H1 > 0:
		out.Precipitation = raw.Rain.H1
	case raw.Snow != nil:
		out.Precipitation = raw.Snow.H1
	}
	return out, nil
}

// Forecast groups the 3-hourly forecast by UTC date and summarises the first
// five days in the order they appear.
func (c *Client) Forecast(ctx context.Context, location string) ([]Day, error) {
	var raw owmForecast
	if err := c.get(ctx, "/data/2.5/forecast", location, url.Values{"cnt": {"40"}}, &raw); err != nil {
		return nil, err
	}

	type bucket struct {
		temps, humidity, wind []float64
		descs                 []string
		precip                float64
	}
	var order []string
	days := map[string]*bucket{}
	for _, it := range raw.List {
		date := time.Unix(it.Dt, 0).UTC().Format("2006-01-02")
		b, ok := days[date]
		if !ok {
			b = &bucket{}
			days[date] = b
			order = append(order, date)
		}
		b.temps = append(b.temps, it.Main.Temp)
		b.humidity = append(b.humidity, it.Main.Humidity)
		b.wind = append(b.wind, it.Wind.Speed)
		b.descs = append(b.descs, firstDesc(it.Weather))
		switch {
		case it.Rain != nil && it.Rain.H3 > 0:
			b.precip += it.Rain.H3
		case it.Snow != nil:
			b.precip += it.Snow.H3
		}
	}

	out := make([]Day, 0, forecastDays)
	for _, date := range order {
		if len(out) == forecastDays {
			break
		}
		b := days[date]
		lo, _ := stats.Min(b.temps)
		hi, _ := stats.Max(b.temps)
		hum, _ := stats.Mean(b.humidity)
		wind, _ := stats.Mean(b.wind)
		out = append(out, Day{
			Date:          date,
			Temperature:   TempRange{Min: int(math.Round(lo)), Max: int(math.Round(hi))},
			Description:   b.descs[len(b.descs)/2],
			Humidity:      int(math.Round(hum)),
			Precipitation: round1(b.precip),
			WindSpeed:     round1(wind),
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, location string, extra url.Values, into any) error {
	if c.key == "" {
		return ErrNotConfigured
	}
	q := url.Values{"q": {location}, "appid": {c.key}, "units": {"metric"}}
	for k, v := range extra {
		q[k] = v
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("weather api error: %d %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode weather response: %w", err)
	}
	return nil
}

func firstDesc(ws []owmDesc) string {
	if len(ws) == 0 {
		return ""
	}
	return ws[0].Description
}

func round1(v float64) float64 {
	r, err := stats.Round(v, 1)
	if err != nil {
		return v
	}
	return r
}
