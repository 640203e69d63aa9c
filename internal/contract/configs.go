package contract

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"fedcurve/schema"
)

// Default values for configuration.
const (
	DefaultStartDate   = "1970-01-01"
	DefaultFPS         = 20
	DefaultPauseFrames = 25
	DefaultImageWidth  = 800
	DefaultImageHeight = 600
	DefaultPrecision   = 1
	DefaultGIFPath     = "phillips_curve.gif"
	DefaultPNGPath     = "phillips_preview.png"

	MaxFPS         = 50
	MaxPauseFrames = 200
)

// MinShapePoints is the minimum observation count for a tenure to form a
// closed polygon.
const MinShapePoints = 3

// Config holds the runtime configuration for rendering and output.
// This struct remains the "final, validated" config.
type Config struct {
	StartTime time.Time
	EndTime   time.Time

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	Offline        bool

	GIFPath     string
	PNGPath     string
	ImageWidth  int
	ImageHeight int
	FPS         int
	PauseFrames int
	SkipPreview bool

	// Tenures and Palette come from defaults unless the config file
	// overrides the chair table.
	Tenures []schema.Tenure
	Palette map[string]schema.RGB

	// FredBaseURL overrides the upstream endpoint, mainly for tests.
	FredBaseURL string
}

// ChairRawInput is one chair entry from the YAML config file.
type ChairRawInput struct {
	Name  string `mapstructure:"name"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
	Color string `mapstructure:"color"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Start          string `mapstructure:"start"`
	End            string `mapstructure:"end"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	Offline        bool   `mapstructure:"offline"`
	FredBaseURL    string `mapstructure:"fred-base-url"`

	// --- Fields from renderCmd.Flags() ---
	Out         string `mapstructure:"out"`
	Size        string `mapstructure:"size"`
	FPS         int    `mapstructure:"fps"`
	PauseFrames int    `mapstructure:"pause-frames"`
	SkipPreview bool   `mapstructure:"skip-preview"`

	// --- Fields from previewCmd.Flags() ---
	PNG string `mapstructure:"png"`

	// --- Chair table overrides from config file ---
	Chairs []ChairRawInput `mapstructure:"chairs"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Tenures != nil {
		clone.Tenures = make([]schema.Tenure, len(c.Tenures))
		copy(clone.Tenures, c.Tenures)
	}
	if c.Palette != nil {
		clone.Palette = make(map[string]schema.RGB, len(c.Palette))
		maps.Copy(clone.Palette, c.Palette)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := processRenderSettings(cfg, input); err != nil {
		return err
	}
	if err := processChairTable(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-date fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Offline = input.Offline
	cfg.FredBaseURL = input.FredBaseURL

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	if cfg.Offline && cfg.CacheBackend == schema.NoneBackend {
		return fmt.Errorf("--offline requires a cache backend other than none")
	}

	return nil
}

// processTimeRange handles date parsing and time range validation.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()

	start := input.Start
	if start == "" {
		start = DefaultStartDate
	}
	t, err := ParseDateInput(start, now)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	cfg.StartTime = t

	cfg.EndTime = now
	if input.End != "" {
		t, err := ParseDateInput(input.End, now)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		cfg.EndTime = t
	}

	if cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)",
			cfg.StartTime.Format(DateFormat), cfg.EndTime.Format(DateFormat))
	}
	return nil
}

// processRenderSettings validates the animation output settings.
func processRenderSettings(cfg *Config, input *ConfigRawInput) error {
	cfg.GIFPath = input.Out
	if cfg.GIFPath == "" {
		cfg.GIFPath = DefaultGIFPath
	}
	cfg.PNGPath = input.PNG
	if cfg.PNGPath == "" {
		cfg.PNGPath = DefaultPNGPath
	}
	cfg.SkipPreview = input.SkipPreview

	cfg.ImageWidth = DefaultImageWidth
	cfg.ImageHeight = DefaultImageHeight
	if input.Size != "" {
		w, h, err := parseSizeString(input.Size)
		if err != nil {
			return err
		}
		cfg.ImageWidth = w
		cfg.ImageHeight = h
	}

	if input.FPS <= 0 || input.FPS > MaxFPS {
		return fmt.Errorf("fps must be between 1 and %d (received %d)", MaxFPS, input.FPS)
	}
	cfg.FPS = input.FPS

	if input.PauseFrames < 0 || input.PauseFrames > MaxPauseFrames {
		return fmt.Errorf("pause-frames must be between 0 and %d (received %d)", MaxPauseFrames, input.PauseFrames)
	}
	cfg.PauseFrames = input.PauseFrames

	return nil
}

// processChairTable resolves the chair table and palette, applying config file
// overrides on top of the built-in defaults.
func processChairTable(cfg *Config, input *ConfigRawInput) error {
	if len(input.Chairs) == 0 {
		cfg.Tenures = schema.DefaultTenures
		cfg.Palette = schema.DefaultPalette
		return nil
	}

	tenures := make([]schema.Tenure, 0, len(input.Chairs))
	palette := make(map[string]schema.RGB, len(input.Chairs))
	now := time.Now()

	for _, raw := range input.Chairs {
		if raw.Name == "" {
			return fmt.Errorf("chair entry missing name")
		}
		start, err := ParseDateInput(raw.Start, now)
		if err != nil {
			return fmt.Errorf("chair %q: invalid start: %w", raw.Name, err)
		}
		end, err := ParseDateInput(raw.End, now)
		if err != nil {
			return fmt.Errorf("chair %q: invalid end: %w", raw.Name, err)
		}
		if start.After(end) {
			return fmt.Errorf("chair %q: start is after end", raw.Name)
		}
		color, err := schema.ParseRGBString(raw.Color)
		if err != nil {
			return fmt.Errorf("chair %q: %w", raw.Name, err)
		}
		tenures = append(tenures, schema.Tenure{Chair: raw.Name, Start: start, End: end})
		palette[raw.Name] = color
	}

	// Tenures must be contiguous and non-overlapping; enforce ordering so the
	// renderer can rely on one index run per chair.
	for i := 1; i < len(tenures); i++ {
		if tenures[i].Start.Before(tenures[i-1].End) {
			return fmt.Errorf("chair %q overlaps with %q", tenures[i].Chair, tenures[i-1].Chair)
		}
	}

	cfg.Tenures = tenures
	cfg.Palette = palette
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseSizeString parses "WIDTHxHEIGHT" pixel dimensions.
func parseSizeString(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT, e.g. 800x600", s)
	}
	if w < 100 || h < 100 || w > 4096 || h > 4096 {
		return 0, 0, fmt.Errorf("size %q out of range: dimensions must be within [100, 4096]", s)
	}
	return w, h, nil
}
