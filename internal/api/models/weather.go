package models

// WeatherSnapshot represents weather at a point in time.
type WeatherSnapshot struct {
	Temp        float64   `json:"temp"`
	FeelsLike   float64   `json:"feelsLike"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Date        Timestamp `json:"date"`
	Location    string    `json:"location,omitempty"`
}

// WeatherForecast is the response for a multi-day forecast lookup.
type WeatherForecast struct {
	Location string            `json:"location"`
	Days     []WeatherSnapshot `json:"days"`
}
