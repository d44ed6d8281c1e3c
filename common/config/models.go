package config

type GeneralConfig struct {
	BindAddress     string `yaml:"bindAddress"`
	Port            int    `yaml:"port"`
	LogDirectory    string `yaml:"logDirectory"`
	LogColors       bool   `yaml:"logColors"`
	JsonLogs        bool   `yaml:"jsonLogs"`
	LogLevel        string `yaml:"logLevel"`
	TrustAnyForward bool   `yaml:"trustAnyForwardedAddress"`
	UiOrigin        string `yaml:"uiOrigin"`
}

type UrlPreviewsConfig struct {
	UserAgent          string   `yaml:"userAgent"`
	MaxRedirects       int      `yaml:"maxRedirects"`
	MaxPageSizeBytes   int64    `yaml:"maxPageSizeBytes"`
	PreviewTypes       []string `yaml:"previewTypes,flow"`
	DisallowedNetworks []string `yaml:"disallowedNetworks,flow"`
	AllowedNetworks    []string `yaml:"allowedNetworks,flow"`
	ProxyURL           string   `yaml:"proxyUrl"`
	OpenGraphFirst     bool     `yaml:"openGraphFirst"`
}

type QrConfig struct {
	DefaultSize  int    `yaml:"defaultSize"`
	MinSize      int    `yaml:"minSize"`
	MaxSize      int    `yaml:"maxSize"`
	DefaultLevel string `yaml:"defaultLevel"`
}

type PaletteConfig struct {
	Name          string `yaml:"name"`
	FrameColor    string `yaml:"frameColor"`
	GradientColor string `yaml:"gradientColor"`
	TextColor     string `yaml:"textColor"`
}

type BrandingConfig struct {
	CanvasSize     int             `yaml:"canvasSize"`
	FaviconService string          `yaml:"faviconService"`
	UserAgent      string          `yaml:"userAgent"`
	MaxLogoBytes   int64           `yaml:"maxLogoBytes"`
	BackoffAt      int             `yaml:"backoffAt"`
	NumWorkers     int             `yaml:"numWorkers"`
	Palettes       []PaletteConfig `yaml:"palettes,flow"`
}

type TimeoutsConfig struct {
	UrlPreviews int `yaml:"urlPreviewTimeoutSeconds"`
	Favicons    int `yaml:"faviconTimeoutSeconds"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
	BurstCount        int     `yaml:"burst"`
}

type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bindAddress"`
	Port        int    `yaml:"port"`
}

type SentryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dsn         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	Debug       bool   `yaml:"debug"`
}
