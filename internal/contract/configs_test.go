package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedcurve/schema"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Start:        "1970-01-01",
		Output:       "text",
		Precision:    1,
		Color:        "yes",
		CacheBackend: "sqlite",
		FPS:          DefaultFPS,
		PauseFrames:  DefaultPauseFrames,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{"valid minimal config", func(*ConfigRawInput) {}, ""},
		{"invalid output mode", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output format"},
		{"invalid precision", func(in *ConfigRawInput) { in.Precision = 5 }, "precision must be"},
		{"invalid color", func(in *ConfigRawInput) { in.Color = "maybe" }, "invalid --color"},
		{"invalid backend", func(in *ConfigRawInput) { in.CacheBackend = "redis" }, "invalid cache backend"},
		{"offline needs a cache", func(in *ConfigRawInput) {
			in.Offline = true
			in.CacheBackend = "none"
		}, "--offline requires"},
		{"mysql needs connection string", func(in *ConfigRawInput) { in.CacheBackend = "mysql" }, "cache-db-connect is required"},
		{"bad start date", func(in *ConfigRawInput) { in.Start = "yesterday-ish" }, "invalid start date"},
		{"start after end", func(in *ConfigRawInput) {
			in.Start = "2024-01-01"
			in.End = "2020-01-01"
		}, "cannot be after end date"},
		{"fps too high", func(in *ConfigRawInput) { in.FPS = 200 }, "fps must be"},
		{"fps zero", func(in *ConfigRawInput) { in.FPS = 0 }, "fps must be"},
		{"negative pause", func(in *ConfigRawInput) { in.PauseFrames = -1 }, "pause-frames must be"},
		{"bad size", func(in *ConfigRawInput) { in.Size = "huge" }, "invalid size"},
		{"size out of range", func(in *ConfigRawInput) { in.Size = "50x50" }, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
	assert.Equal(t, DefaultGIFPath, cfg.GIFPath)
	assert.Equal(t, DefaultPNGPath, cfg.PNGPath)
	assert.Equal(t, DefaultImageWidth, cfg.ImageWidth)
	assert.Equal(t, DefaultImageHeight, cfg.ImageHeight)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, DefaultPauseFrames, cfg.PauseFrames)

	// Without chair overrides, the built-in table applies.
	assert.Equal(t, schema.DefaultTenures, cfg.Tenures)
	assert.Len(t, cfg.Palette, len(schema.DefaultTenures))
}

func TestProcessAndValidateRenderOverrides(t *testing.T) {
	input := validInput()
	input.Out = "custom.gif"
	input.Size = "1024x768"
	input.FPS = 10
	input.PauseFrames = 0
	input.SkipPreview = true

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "custom.gif", cfg.GIFPath)
	assert.Equal(t, 1024, cfg.ImageWidth)
	assert.Equal(t, 768, cfg.ImageHeight)
	assert.Equal(t, 10, cfg.FPS)
	assert.Equal(t, 0, cfg.PauseFrames)
	assert.True(t, cfg.SkipPreview)
}

func TestProcessChairTableOverrides(t *testing.T) {
	input := validInput()
	input.Chairs = []ChairRawInput{
		{Name: "First", Start: "2000-01-01", End: "2004-12-31", Color: "rgb(255,0,0)"},
		{Name: "Second", Start: "2005-01-01", End: "2009-12-31", Color: "rgb(0,0,255)"},
	}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	require.Len(t, cfg.Tenures, 2)
	assert.Equal(t, "First", cfg.Tenures[0].Chair)
	assert.Equal(t, schema.RGB{R: 1, G: 0, B: 0}, cfg.Palette["First"])
}

func TestProcessChairTableRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name        string
		chairs      []ChairRawInput
		expectError string
	}{
		{
			"missing name",
			[]ChairRawInput{{Start: "2000-01-01", End: "2001-01-01", Color: "rgb(0,0,0)"}},
			"missing name",
		},
		{
			"start after end",
			[]ChairRawInput{{Name: "X", Start: "2002-01-01", End: "2001-01-01", Color: "rgb(0,0,0)"}},
			"start is after end",
		},
		{
			"bad color",
			[]ChairRawInput{{Name: "X", Start: "2000-01-01", End: "2001-01-01", Color: "#ff0000"}},
			"invalid rgb string",
		},
		{
			"overlapping tenures",
			[]ChairRawInput{
				{Name: "X", Start: "2000-01-01", End: "2002-01-01", Color: "rgb(0,0,0)"},
				{Name: "Y", Start: "2001-01-01", End: "2003-01-01", Color: "rgb(1,1,1)"},
			},
			"overlaps",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.Chairs = tt.chairs
			err := ProcessAndValidate(&Config{}, input)
			assert.ErrorContains(t, err, tt.expectError)
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite needs nothing", schema.SQLiteBackend, "", false},
		{"none needs nothing", schema.NoneBackend, "", false},
		{"valid mysql", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/cache", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/cache", true},
		{"mysql missing database", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"valid postgres", schema.PostgreSQLBackend, "host=localhost dbname=cache user=u", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=cache", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSizeString(t *testing.T) {
	w, h, err := parseSizeString("800x600")
	require.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	w, h, err = parseSizeString(" 1920X1080 ")
	require.NoError(t, err)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	_, _, err = parseSizeString("800")
	assert.Error(t, err)
	_, _, err = parseSizeString("9999x9999")
	assert.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	clone := cfg.Clone()
	clone.Tenures[0].Chair = "Mutant"
	clone.Palette["Mutant"] = schema.ColorRed

	assert.NotEqual(t, "Mutant", cfg.Tenures[0].Chair)
	_, ok := cfg.Palette["Mutant"]
	assert.False(t, ok)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", "on"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0", "off"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
