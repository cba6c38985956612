package gamemaster

import "othello/game"

// Player binds a mutable display name to a fixed color.
type Player struct {
	name  string
	color game.Color
}

func NewPlayer(name string, color game.Color) *Player {
	return &Player{name: name, color: color}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) SetName(name string) {
	p.name = name
}

func (p *Player) Color() game.Color {
	return p.color
}

// Token returns the piece this player places.
func (p *Player) Token() game.Cell {
	return p.color.Token()
}
