package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stagekit/asset"
	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/device"
	"github.com/lixenwraith/stagekit/input"
)

// Manifest declares users with their action bindings plus the assets
// to register before the stores lock.
type Manifest struct {
	Users  []UserManifest `yaml:"users"`
	Assets AssetManifest  `yaml:"assets"`
}

// UserManifest is one user's action list.
type UserManifest struct {
	Actions []ActionManifest `yaml:"actions"`
}

// ActionManifest is one named action with its ordered binding
// alternatives. Shape is one of digital, analog, axis.
type ActionManifest struct {
	Name     string            `yaml:"name"`
	Shape    string            `yaml:"shape"`
	Bindings []BindingManifest `yaml:"bindings"`
}

// BindingManifest is one alternative. Exactly one binding form should
// be set; listed keys or buttons must all be held simultaneously.
// Device is a gamepad index or "any".
type BindingManifest struct {
	Keys           []string `yaml:"keys,omitempty"`
	MouseButtons   []string `yaml:"mouse_buttons,omitempty"`
	MousePosition  bool     `yaml:"mouse_position,omitempty"`
	GamepadButtons []string `yaml:"gamepad_buttons,omitempty"`
	Axis           string   `yaml:"axis,omitempty"`
	Stick          []string `yaml:"stick,omitempty"`
	Device         string   `yaml:"device,omitempty"`
}

// AssetManifest maps asset names to their load arguments.
type AssetManifest struct {
	Textures map[string]string       `yaml:"textures"`
	Fonts    map[string]FontManifest `yaml:"fonts"`
	Sounds   map[string]string       `yaml:"sounds"`
	Music    map[string]string       `yaml:"music"`
}

// FontManifest is a font file plus the point size to build its face at.
type FontManifest struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// Tickets holds the tickets issued while applying a manifest, by asset
// name. Scenes resolve their tickets here during initialization.
type Tickets struct {
	Textures map[string]core.Ticket
	Fonts    map[string]core.Ticket
	Sounds   map[string]core.Ticket
	Music    map[string]core.Ticket
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return &m, nil
}

// Apply registers every declared user, action, and asset. Assets load
// eagerly; their tickets are returned by name. Apply does not lock the
// stores, so callers may register more assets before locking.
func (m *Manifest) Apply(bindings *input.Map, storage *asset.Storage, assetDir string) (*Tickets, error) {
	for ui, u := range m.Users {
		userIndex := bindings.AddUser()
		for _, a := range u.Actions {
			shape, err := shapeByName(a.Shape)
			if err != nil {
				return nil, fmt.Errorf("user %d action %q: %w", ui, a.Name, err)
			}
			commands, err := buildCommands(a.Bindings)
			if err != nil {
				return nil, fmt.Errorf("user %d action %q: %w", ui, a.Name, err)
			}
			if err := bindings.AddAction(userIndex, a.Name, commands, shape); err != nil {
				return nil, fmt.Errorf("user %d: %w", ui, err)
			}
		}
	}

	t := &Tickets{
		Textures: make(map[string]core.Ticket, len(m.Assets.Textures)),
		Fonts:    make(map[string]core.Ticket, len(m.Assets.Fonts)),
		Sounds:   make(map[string]core.Ticket, len(m.Assets.Sounds)),
		Music:    make(map[string]core.Ticket, len(m.Assets.Music)),
	}

	for name, path := range m.Assets.Textures {
		if err := storage.Textures.Load(name, filepath.Join(assetDir, path)); err != nil {
			return nil, err
		}
		t.Textures[name], _ = storage.Textures.TakeTicket(name)
	}
	for name, f := range m.Assets.Fonts {
		args := asset.FontArgs{Path: filepath.Join(assetDir, f.Path), Size: f.Size}
		if err := storage.Fonts.Load(name, args); err != nil {
			return nil, err
		}
		t.Fonts[name], _ = storage.Fonts.TakeTicket(name)
	}
	for name, path := range m.Assets.Sounds {
		if err := storage.Sounds.Load(name, filepath.Join(assetDir, path)); err != nil {
			return nil, err
		}
		t.Sounds[name], _ = storage.Sounds.TakeTicket(name)
	}
	for name, path := range m.Assets.Music {
		if err := storage.Music.Load(name, filepath.Join(assetDir, path)); err != nil {
			return nil, err
		}
		t.Music[name], _ = storage.Music.TakeTicket(name)
	}
	return t, nil
}

func shapeByName(name string) (input.Shape, error) {
	switch name {
	case "digital", "":
		return input.ShapeDigital, nil
	case "analog":
		return input.ShapeAnalog, nil
	case "axis":
		return input.ShapeAxis, nil
	}
	return 0, fmt.Errorf("unknown action shape %q", name)
}

func buildCommands(bindings []BindingManifest) ([]input.Command, error) {
	commands := make([]input.Command, 0, len(bindings))
	for i, b := range bindings {
		cmd, err := buildCommand(b)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

func buildCommand(b BindingManifest) (input.Command, error) {
	switch {
	case len(b.Keys) > 0:
		keys := make([]device.Key, 0, len(b.Keys))
		for _, name := range b.Keys {
			k, ok := device.KeyByName(name)
			if !ok {
				return input.Command{}, fmt.Errorf("unknown key %q", name)
			}
			keys = append(keys, k)
		}
		return input.Keys(keys...), nil

	case len(b.MouseButtons) > 0:
		buttons := make([]device.MouseButton, 0, len(b.MouseButtons))
		for _, name := range b.MouseButtons {
			mb, ok := device.MouseButtonByName(name)
			if !ok {
				return input.Command{}, fmt.Errorf("unknown mouse button %q", name)
			}
			buttons = append(buttons, mb)
		}
		return input.MouseButtons(buttons...), nil

	case b.MousePosition:
		return input.MousePosition(), nil

	case len(b.GamepadButtons) > 0:
		dev, err := deviceIndex(b.Device)
		if err != nil {
			return input.Command{}, err
		}
		buttons := make([]device.Button, 0, len(b.GamepadButtons))
		for _, name := range b.GamepadButtons {
			gb, ok := device.ButtonByName(name)
			if !ok {
				return input.Command{}, fmt.Errorf("unknown gamepad button %q", name)
			}
			buttons = append(buttons, gb)
		}
		return input.GamepadButtons(dev, buttons...), nil

	case b.Axis != "":
		dev, err := deviceIndex(b.Device)
		if err != nil {
			return input.Command{}, err
		}
		axis, ok := device.AxisByName(b.Axis)
		if !ok {
			return input.Command{}, fmt.Errorf("unknown axis %q", b.Axis)
		}
		return input.GamepadAxis(dev, axis), nil

	case len(b.Stick) == 2:
		dev, err := deviceIndex(b.Device)
		if err != nil {
			return input.Command{}, err
		}
		x, ok := device.AxisByName(b.Stick[0])
		if !ok {
			return input.Command{}, fmt.Errorf("unknown axis %q", b.Stick[0])
		}
		y, ok := device.AxisByName(b.Stick[1])
		if !ok {
			return input.Command{}, fmt.Errorf("unknown axis %q", b.Stick[1])
		}
		return input.GamepadStick(dev, x, y), nil
	}
	return input.Command{}, fmt.Errorf("binding declares no command")
}

// deviceIndex parses a manifest gamepad selector: empty or "any" means
// first-match over all connected devices.
func deviceIndex(s string) (int, error) {
	if s == "" || s == "any" {
		return input.AnyDevice, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid device selector %q", s)
	}
	return n, nil
}
