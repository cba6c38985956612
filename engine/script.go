package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"othello/game"

	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no moves")

//go:embed demo.yaml
var demoScript []byte

// Script is a scripted match: player names and an ordered list of move
// requests in absolute board coordinates (1..8).
type Script struct {
	Players        ScriptPlayers `yaml:"players"`
	AnnounceWinner bool          `yaml:"announce_winner"`
	Moves          []ScriptMove  `yaml:"moves"`
}

type ScriptPlayers struct {
	Black string `yaml:"black"`
	White string `yaml:"white"`
}

type ScriptMove struct {
	Color string `yaml:"color"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
}

// Parse validates the move at the boundary before it reaches a session.
func (m ScriptMove) Parse() (game.Color, game.Position, error) {
	color, err := game.ParseColor(m.Color)
	if err != nil {
		return 0, game.Position{}, err
	}
	pos := game.Position{Row: m.Row, Col: m.Col}
	if err := game.ValidatePosition(pos); err != nil {
		return 0, game.Position{}, err
	}
	return color, pos, nil
}

// Validate checks every move in the script.
func (s *Script) Validate() error {
	if len(s.Moves) == 0 {
		return ErrEmptyScript
	}
	for i, m := range s.Moves {
		if _, _, err := m.Parse(); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// DefaultScript returns the bundled demonstration match.
func DefaultScript() *Script {
	s, err := ParseScript(demoScript)
	if err != nil {
		panic(fmt.Sprintf("bundled demo script is broken: %v", err))
	}
	return s
}
