// Command stagekit-demo runs a minimal game on the terminal backend: a
// cursor moved by bound actions, a fire action playing a sound, and a
// looping music track. Assets and bindings come from a YAML manifest;
// without one, built-in key bindings are used and playback instructions
// degrade to log lines.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/lixenwraith/stagekit"
	"github.com/lixenwraith/stagekit/app"
	"github.com/lixenwraith/stagekit/asset"
	"github.com/lixenwraith/stagekit/audio"
	"github.com/lixenwraith/stagekit/config"
	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/device"
	"github.com/lixenwraith/stagekit/input"
	"github.com/lixenwraith/stagekit/service"
	"github.com/lixenwraith/stagekit/stage"
	"github.com/lixenwraith/stagekit/status"
	"github.com/lixenwraith/stagekit/terminal"
)

func main() {
	manifestPath := pflag.String("manifest", "stage.yaml", "path to the stage manifest")
	mute := pflag.Bool("mute", false, "disable the audio backend")
	tickRate := pflag.Int("tick-rate", 0, "updates per second (0 = environment setting)")
	pflag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	if *mute {
		cfg.Mute = true
	}
	if *tickRate > 0 {
		cfg.TickRate = *tickRate
	}

	if err := run(cfg, *manifestPath); err != nil {
		fmt.Fprintf(os.Stderr, "stagekit-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Env, manifestPath string) error {
	setupLogger(cfg.LogLevel)

	term := terminal.NewService()
	services := []service.Service{term}

	var aud *audio.Service
	if !cfg.Mute {
		aud = audio.NewService()
		services = append(services, aud)
	}

	runner, err := service.NewRunner(services...)
	if err != nil {
		return err
	}
	if err := runner.InitAll(); err != nil {
		return err
	}
	if err := runner.StartAll(); err != nil {
		return err
	}
	defer runner.StopAll()

	bindings := input.NewMap()
	storage := asset.NewStorage()

	var tickets *config.Tickets
	if m, err := config.LoadManifest(manifestPath); err == nil {
		tickets, err = m.Apply(bindings, storage, cfg.AssetDir)
		if err != nil {
			return err
		}
	} else {
		stagekit.Logger().Warn("no manifest, using built-in bindings", "error", err)
		tickets = &config.Tickets{}
		if err := defaultBindings(bindings); err != nil {
			return err
		}
	}

	st := stage.NewStage()
	scene := newDemoScene(bindings, tickets)
	if err := st.AddScene("demo", scene, true); err != nil {
		return err
	}
	if err := st.Initialize(&stage.Initialize{Input: bindings, Resources: storage.Directory()}); err != nil {
		return err
	}
	storage.Lock()

	var sink app.AudioSink
	if aud != nil {
		if p := aud.Player(); p != nil {
			sink = p
		}
	}

	a := app.New(app.Config{
		Events:  term.Backend(),
		Surface: term.Surface(),
		Audio:   sink,
		Input:   bindings,
		Stage:   st,
		Storage: storage,
		Status:  status.NewRegistry(),
	})
	a.Run(cfg.TickRate)
	return nil
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	stagekit.SetLogger(slog.New(handler))
}

// defaultBindings registers one user with arrow/WASD movement, space or
// gamepad A to fire, and the left stick of any gamepad for analog
// movement.
func defaultBindings(bindings *input.Map) error {
	u := bindings.AddUser()

	add := func(name string, shape input.Shape, commands ...input.Command) error {
		return bindings.AddAction(u, name, commands, shape)
	}

	if err := add("up", input.ShapeDigital,
		input.Keys(device.KeyUp), input.Keys(device.KeyW),
		input.GamepadButtons(input.AnyDevice, device.ButtonDPadUp)); err != nil {
		return err
	}
	if err := add("down", input.ShapeDigital,
		input.Keys(device.KeyDown), input.Keys(device.KeyS),
		input.GamepadButtons(input.AnyDevice, device.ButtonDPadDown)); err != nil {
		return err
	}
	if err := add("left", input.ShapeDigital,
		input.Keys(device.KeyLeft), input.Keys(device.KeyA),
		input.GamepadButtons(input.AnyDevice, device.ButtonDPadLeft)); err != nil {
		return err
	}
	if err := add("right", input.ShapeDigital,
		input.Keys(device.KeyRight), input.Keys(device.KeyD),
		input.GamepadButtons(input.AnyDevice, device.ButtonDPadRight)); err != nil {
		return err
	}
	if err := add("fire", input.ShapeDigital,
		input.Keys(device.KeySpace),
		input.GamepadButtons(input.AnyDevice, device.ButtonA)); err != nil {
		return err
	}
	return add("move", input.ShapeAnalog,
		input.GamepadStick(input.AnyDevice, device.AxisLeftX, device.AxisLeftY))
}

// demoScene moves a cursor by the bound actions and emits playback
// instructions on the fire edge. The cursor texture, fire sound, music
// track, and HUD font are all optional manifest assets.
type demoScene struct {
	bindings *input.Map
	tickets  *config.Tickets

	user    int
	actions map[string]int

	x, y         float64
	prevX, prevY float64
	speed        float64

	firing       bool
	musicStarted bool
}

func newDemoScene(bindings *input.Map, tickets *config.Tickets) *demoScene {
	return &demoScene{
		bindings: bindings,
		tickets:  tickets,
		actions:  make(map[string]int),
		x:        20,
		y:        10,
		speed:    15,
	}
}

func (s *demoScene) Initialize(*stage.Initialize) error {
	if s.bindings.Users() == 0 {
		return fmt.Errorf("no users declared")
	}
	for _, name := range []string{"up", "down", "left", "right", "fire", "move"} {
		if i, ok := s.bindings.ActionIndex(s.user, name); ok {
			s.actions[name] = i
		}
	}
	return nil
}

func (s *demoScene) Update(upd *stage.Update, delta float64) ([]core.Instruction, error) {
	s.prevX, s.prevY = s.x, s.y

	dx, dy := 0.0, 0.0
	if s.held(upd, "up") {
		dy--
	}
	if s.held(upd, "down") {
		dy++
	}
	if s.held(upd, "left") {
		dx--
	}
	if s.held(upd, "right") {
		dx++
	}
	if i, ok := s.actions["move"]; ok {
		if v, err := upd.Input.ActionValue(s.user, i); err == nil && v.Shape == input.ShapeAnalog {
			dx += v.X
			dy += v.Y
		}
	}
	s.x += dx * s.speed * delta
	s.y += dy * s.speed * delta

	var instructions []core.Instruction

	if !s.musicStarted {
		if t, ok := s.tickets.Music["theme"]; ok {
			instructions = append(instructions, core.PlayMusic(t, -1, 0.7))
		}
		s.musicStarted = true
	}
	for _, info := range upd.Info {
		if info == core.InfoMusicStopped && s.musicStarted {
			if t, ok := s.tickets.Music["theme"]; ok {
				instructions = append(instructions, core.PlayMusic(t, -1, 0.7))
			}
		}
	}

	firing := s.held(upd, "fire")
	if firing && !s.firing {
		if t, ok := s.tickets.Sounds["fire"]; ok {
			instructions = append(instructions, core.PlaySound(t, 1))
		}
	}
	s.firing = firing

	return instructions, nil
}

func (s *demoScene) held(upd *stage.Update, name string) bool {
	i, ok := s.actions[name]
	if !ok {
		return false
	}
	v, err := upd.Input.ActionValue(s.user, i)
	return err == nil && v.Shape == input.ShapeDigital && v.State == input.Down
}

func (s *demoScene) Draw(interp float64) ([]stage.Draw, error) {
	x := s.prevX + (s.x-s.prevX)*interp
	y := s.prevY + (s.y-s.prevY)*interp

	var batch []stage.Draw
	if t, ok := s.tickets.Textures["cursor"]; ok {
		batch = append(batch, stage.Draw{Kind: stage.DrawTexture, Ticket: t, X: x, Y: y})
	}
	if t, ok := s.tickets.Fonts["hud"]; ok {
		batch = append(batch, stage.Draw{Kind: stage.DrawText, Ticket: t, Text: "stagekit demo", X: 1, Y: 0})
	}
	return batch, nil
}
