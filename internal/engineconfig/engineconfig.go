package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jinzhu/copier"
)

// EngineConfigPath is the path to the prefs file, relative to the process working directory.
const EngineConfigPath = "config/square.json"

// Backends that can draw the square.
const (
	BackendGL     = "gl"
	BackendRaylib = "raylib"
)

// EnginePrefs holds the run options of the game. Window size and title are fixed and not here.
type EnginePrefs struct {
	Backend      string `json:"backend,omitempty"`
	Space        string `json:"space,omitempty"`
	Textured     bool   `json:"textured,omitempty"`
	TexturePath  string `json:"texture_path,omitempty"`
	Seed         uint64 `json:"seed,omitempty"`
	ShowFPS      bool   `json:"show_fps,omitempty"`
	ShowMemAlloc bool   `json:"show_memalloc,omitempty"`
}

// Default returns the prefs used when nothing is configured: OpenGL backend, device space,
// flat color, time-based seed, no overlays.
func Default() EnginePrefs {
	return EnginePrefs{
		Backend: BackendGL,
		Space:   "device",
	}
}

// Load reads prefs from path. Values present in the file override Default(); a missing file
// yields Default() with no error. A malformed file yields Default() and the parse error.
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	var file EnginePrefs
	if err := json.Unmarshal(data, &file); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&p, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), err
	}
	return p, p.Validate()
}

// Validate rejects unknown backends and spaces.
func (p EnginePrefs) Validate() error {
	switch p.Backend {
	case BackendGL, BackendRaylib:
	default:
		return fmt.Errorf("unknown backend %q", p.Backend)
	}
	switch p.Space {
	case "device", "screen":
	default:
		return fmt.Errorf("unknown space %q", p.Space)
	}
	return nil
}

// ApplyEnv overrides p with SQUARE_* variables read through getenv.
func ApplyEnv(p EnginePrefs, getenv func(string) string) (EnginePrefs, error) {
	if v := getenv("SQUARE_BACKEND"); v != "" {
		p.Backend = v
	}
	if v := getenv("SQUARE_SPACE"); v != "" {
		p.Space = v
	}
	if v := getenv("SQUARE_TEXTURE"); v != "" {
		p.TexturePath = v
		p.Textured = true
	}
	if v := getenv("SQUARE_TEXTURED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, fmt.Errorf("SQUARE_TEXTURED: %w", err)
		}
		p.Textured = b
	}
	if v := getenv("SQUARE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, fmt.Errorf("SQUARE_SEED: %w", err)
		}
		p.Seed = n
	}
	return p, p.Validate()
}
