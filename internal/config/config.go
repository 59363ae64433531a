package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"actionmap/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the demo and pipeline configuration
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Players  []PlayerConfig `yaml:"players"`
	Buttons  []ButtonConfig `yaml:"buttons"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type PipelineConfig struct {
	Workers           int `yaml:"workers"`            // 0 = one per CPU
	ParallelThreshold int `yaml:"parallel_threshold"` // 0 = always serial
	TickBudgetMicros  int `yaml:"tick_budget_us"`
}

// PlayerConfig describes one actor: its optional gamepad and the bindings of
// each action, written as "device:code" strings.
type PlayerConfig struct {
	Name     string              `yaml:"name"`
	Gamepad  *int                `yaml:"gamepad"`
	Bindings map[string][]string `yaml:"bindings"`
}

// ButtonConfig places an on-screen button pressing Action for Player.
type ButtonConfig struct {
	Label  string `yaml:"label"`
	Player string `yaml:"player"`
	Action string `yaml:"action"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes yaml configuration data
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Players))
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("config: player %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("config: duplicate player %q", p.Name)
		}
		seen[p.Name] = true
		if p.Gamepad != nil && *p.Gamepad < 0 {
			return fmt.Errorf("config: player %q: negative gamepad %d", p.Name, *p.Gamepad)
		}
	}
	for _, b := range c.Buttons {
		if !seen[b.Player] {
			return fmt.Errorf("config: button %q targets unknown player %q", b.Label, b.Player)
		}
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("config: negative worker count %d", c.Pipeline.Workers)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	if c.Display.ScreenWidth <= 0 {
		return 960
	}
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	if c.Display.ScreenHeight <= 0 {
		return 540
	}
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	if c.Display.TPS <= 0 {
		return ebiten.DefaultTPS
	}
	return c.Display.TPS
}

// GetTickBudget returns the slow tick alert threshold; zero disables alerts
func (c *Config) GetTickBudget() time.Duration {
	return time.Duration(c.Pipeline.TickBudgetMicros) * time.Microsecond
}

// GetPlayer returns the player with the given name
func (c *Config) GetPlayer(name string) (*PlayerConfig, bool) {
	for i := range c.Players {
		if c.Players[i].Name == name {
			return &c.Players[i], true
		}
	}
	return nil, false
}

// GamepadID returns the configured gamepad affinity, if any
func (p *PlayerConfig) GamepadID() (ebiten.GamepadID, bool) {
	if p.Gamepad == nil {
		return 0, false
	}
	return ebiten.GamepadID(*p.Gamepad), true
}

// BuildInputMap turns the player's bindings into an InputMap. lookup resolves
// action names. Unknown actions and unparsable bindings are skipped with a
// warning so that one typo does not disable a whole player.
func BuildInputMap[A comparable](p *PlayerConfig, lookup func(name string) (A, bool)) *input.InputMap[A] {
	m := input.NewInputMap[A]()
	if id, ok := p.GamepadID(); ok {
		m.SetGamepad(id)
	}

	names := make([]string, 0, len(p.Bindings))
	for name := range p.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := lookup(name)
		if !ok {
			log.Printf("Warning: player %s: unknown action %q", p.Name, name)
			continue
		}
		for _, text := range p.Bindings[name] {
			b, err := input.ParseBinding(text)
			if err != nil {
				log.Printf("Warning: player %s: action %s: %v", p.Name, name, err)
				continue
			}
			m.Insert(action, b)
		}
	}
	return m
}
