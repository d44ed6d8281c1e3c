package config

type MainConfig struct {
	General     GeneralConfig     `yaml:"repo"`
	UrlPreviews UrlPreviewsConfig `yaml:"urlPreviews"`
	QR          QrConfig          `yaml:"qr"`
	Branding    BrandingConfig    `yaml:"branding"`
	Timeouts    TimeoutsConfig    `yaml:"timeouts"`
	RateLimit   RateLimitConfig   `yaml:"rateLimit"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Sentry      SentryConfig      `yaml:"sentry"`
}

func NewDefaultMainConfig() MainConfig {
	return MainConfig{
		General: GeneralConfig{
			BindAddress:     "127.0.0.1",
			Port:            8000,
			LogDirectory:    "logs",
			LogColors:       false,
			JsonLogs:        false,
			LogLevel:        "info",
			TrustAnyForward: false,
			UiOrigin:        "",
		},
		UrlPreviews: UrlPreviewsConfig{
			UserAgent:        "Mozilla/5.0 (compatible; PreviewBot/1.0; +http://example.com/bot)",
			MaxRedirects:     5,
			MaxPageSizeBytes: 10485760, // 10mb
			PreviewTypes: []string{
				"text/*",
				"application/xhtml+xml*",
			},
			DisallowedNetworks: []string{
				"127.0.0.1/8",
				"10.0.0.0/8",
				"172.16.0.0/12",
				"192.168.0.0/16",
				"100.64.0.0/10",
				"169.254.0.0/16",
				"::1/128",
				"fe80::/64",
				"fc00::/7",
			},
			AllowedNetworks: []string{
				"0.0.0.0/0", // "Everything"
				"::/0",
			},
			ProxyURL:       "",
			OpenGraphFirst: false,
		},
		QR: QrConfig{
			DefaultSize:  300,
			MinSize:      64,
			MaxSize:      2048,
			DefaultLevel: "M",
		},
		Branding: BrandingConfig{
			CanvasSize:     512,
			FaviconService: "https://www.google.com/s2/favicons?domain={domain}&sz=128",
			UserAgent:      "Mozilla/5.0 (compatible; PreviewBot/1.0; +http://example.com/bot)",
			MaxLogoBytes:   1048576, // 1mb
			BackoffAt:      10,
			NumWorkers:     4,
			Palettes: []PaletteConfig{
				{Name: "classic", FrameColor: "#111827", GradientColor: "", TextColor: "#ffffff"},
				{Name: "ocean", FrameColor: "#0ea5e9", GradientColor: "#6366f1", TextColor: "#ffffff"},
				{Name: "sunset", FrameColor: "#f97316", GradientColor: "#db2777", TextColor: "#ffffff"},
				{Name: "forest", FrameColor: "#15803d", GradientColor: "#65a30d", TextColor: "#f0fdf4"},
			},
		},
		Timeouts: TimeoutsConfig{
			UrlPreviews: 5,
			Favicons:    3,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			BurstCount:        10,
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			BindAddress: "127.0.0.1",
			Port:        9000,
		},
		Sentry: SentryConfig{
			Enabled:     false,
			Dsn:         "https://examplePublicKey@o0.ingest.sentry.io/0",
			Environment: "",
			Debug:       false,
		},
	}
}
