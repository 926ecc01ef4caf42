package domain

// WeatherReport is the enrichment payload returned for a holiday or
// activity location. Produced by the external weather collaborator,
// never consulted for authorization.
type WeatherReport struct {
	City        string  `json:"city"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
}
