package mapview

// Config holds the tile layer and initial zoom handed to the map surface.
type Config struct {
	TileURL     string
	Attribution string
	DefaultZoom int
}

const (
	osmTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// DefaultConfig returns the OpenStreetMap configuration
func DefaultConfig() Config {
	return Config{
		TileURL:     osmTileURL,
		Attribution: osmAttribution,
		DefaultZoom: 13,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.TileURL == "" {
		c.TileURL = d.TileURL
	}
	if c.Attribution == "" {
		c.Attribution = d.Attribution
	}
	if c.DefaultZoom <= 0 {
		c.DefaultZoom = d.DefaultZoom
	}
	return c
}
