// Package app implements the main loop: window, input, scene engine and renderer.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/touchcone/internal/config"
	"github.com/Faultbox/touchcone/internal/engine/input"
	"github.com/Faultbox/touchcone/internal/engine/renderer"
	"github.com/Faultbox/touchcone/internal/engine/scene"
	"github.com/Faultbox/touchcone/internal/engine/screenshot"
	"github.com/Faultbox/touchcone/internal/engine/window"
	"github.com/Faultbox/touchcone/internal/logger"
)

const title = "TouchCone"

// App is the running demo.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	engine   scene.Engine
	capture  *screenshot.Capture
	log      *zap.Logger
}

// New creates the window, GL renderer and scene engine.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:  cfg,
		capture: screenshot.New("screenshots", "touchcone"),
		log:     logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.Stringer("backend", cfg.Cone.Backend),
		zap.Int("slices", cfg.Cone.Slices),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.engine, err = scene.New(cfg.Cone.Backend, cfg.Cone.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context from the window
	pw, ph := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: pw, Height: ph})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w, h := a.window.GetSize()
	if err := a.engine.Initialize(w, h); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize scene: %w", err)
	}

	a.input = input.New(w, h)

	a.log.Info("initialized successfully")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if err := a.handle(event); err != nil {
				return err
			}
		}
		if !a.running {
			break
		}

		a.engine.UpdateAnimation(float32(dt))
		a.renderer.Draw(a.engine.Render())
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handle(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		if err := a.engine.Initialize(event.Width, event.Height); err != nil {
			return fmt.Errorf("resize to %dx%d: %w", event.Width, event.Height, err)
		}
		a.renderer.Resize(a.window.GetDrawableSize())

	case input.EventKeyDown:
		switch event.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
		case sdl.SCANCODE_F12:
			a.screenshot()
		}

	case input.EventFingerDown:
		a.engine.OnFingerDown(event.Location)
	case input.EventFingerMove:
		a.engine.OnFingerMove(event.Previous, event.Location)
	case input.EventFingerUp:
		a.engine.OnFingerUp(event.Location)
	}
	return nil
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.Save(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
