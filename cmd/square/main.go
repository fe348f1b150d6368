package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"moving-square/internal/debug"
	"moving-square/internal/engineconfig"
	"moving-square/internal/env"
	"moving-square/internal/graphics"
	"moving-square/internal/graphics/glbackend"
	"moving-square/internal/graphics/rlbackend"
	"moving-square/internal/input"
	"moving-square/internal/logger"
	"moving-square/internal/primitive"
	"moving-square/internal/texture"
)

func init() {
	// GLFW and raylib must run on the main thread.
	runtime.LockOSThread()
}

// surface is a graphics.Surface that also provides the recolor timer.
type surface interface {
	graphics.Surface
	Clock() primitive.Timer
}

func main() {
	log := logger.New(logger.LogFilePath, os.Stderr)
	if err := run(log); err != nil {
		log.Log(err.Error())
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	if err := env.Load(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	prefs, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	prefs, err = engineconfig.ApplyEnv(prefs, os.Getenv)
	if err != nil {
		return fmt.Errorf("prefs from environment: %w", err)
	}
	space, err := primitive.ParseSpace(prefs.Space)
	if err != nil {
		return err
	}
	def, err := primitive.LoadDef(primitive.DefPath)
	if err != nil {
		return fmt.Errorf("load primitive: %w", err)
	}
	startColor, err := def.StartColor()
	if err != nil {
		return err
	}

	cfg := graphics.DefaultConfig(log)
	cfg.Overlay = debug.New(prefs.ShowFPS, prefs.ShowMemAlloc)
	if prefs.Textured {
		img, err := texture.Resolve(prefs.TexturePath)
		if err != nil {
			return err
		}
		if prefs.TexturePath == "" {
			log.Log("no texture_path configured, using placeholder texture")
		}
		cfg.Texture = img
	}

	latch := &input.Latch{}
	var s surface
	switch prefs.Backend {
	case engineconfig.BackendRaylib:
		s, err = rlbackend.Open(cfg, latch)
	default:
		s, err = glbackend.Open(cfg, latch)
	}
	if err != nil {
		return err
	}
	log.Logf("opened %dx%d %q with %s backend", cfg.Width, cfg.Height, cfg.Title, prefs.Backend)

	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	m := def.Metrics(space)
	mover := primitive.NewMover(space, m, graphics.Width, graphics.Height, s.Clock(), rand.New(rand.NewPCG(seed, seed)))
	loop := graphics.NewLoop(s, latch, mover, primitive.New(space, m.Side, startColor), prefs.Textured, log)
	return loop.Run()
}
