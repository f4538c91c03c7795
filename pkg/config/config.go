package config

import (
	"encoding/json"
	"os"

	"github.com/hjson/hjson-go"
)

// Config holds the render settings loaded from an hjson file
type Config struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samples-per-pixel"`
	MaxDepth        int    `json:"max-depth"`
	Seed            int64  `json:"seed"`
	Output          string `json:"output"`
	GroundTexture   string `json:"ground-texture"`
}

// Default returns the settings used when no config file is given
func Default() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 64,
		MaxDepth:        16,
		Seed:            42,
		Output:          "render.png",
	}
}

// Load reads an hjson settings file, filling unset fields from defaults
func Load(path string) (Config, error) {
	conf := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}

	var mdat map[string]interface{}
	if err = hjson.Unmarshal(raw, &mdat); err != nil {
		return conf, err
	}
	if raw, err = json.Marshal(mdat); err != nil {
		return conf, err
	}
	err = json.Unmarshal(raw, &conf)
	return conf, err
}
