package entities

import "fmt"

type PickupKind int

const (
	PacDot PickupKind = iota
	PowerPellet
	Fruit
)

func (k PickupKind) String() string {
	switch k {
	case PacDot:
		return "pac-dot"
	case PowerPellet:
		return "power pellet"
	case Fruit:
		return "fruit"
	default:
		return fmt.Sprintf("pickup(%d)", int(k))
	}
}

// Hitbox edge, in tiles, of each pickup kind.
const (
	PacDotSize      = 2.0 / 32
	PowerPelletSize = 8.0 / 32
	FruitSize       = 12.0 / 32
)

// Fruit types, cheapest first.
const (
	Cherry = iota
	Strawberry
	Orange
	Apple
	Melon
	FruitTypes
)

type Pickup struct {
	Kind     PickupKind
	Cell     Cell
	Value    int
	Consumed bool
	// FruitType is only meaningful for fruit.
	FruitType int
	// Lifetime is the number of seconds a fruit stays on the board; zero
	// means forever.
	Lifetime float64
}

func NewPacDot(c Cell, value int) *Pickup {
	return &Pickup{Kind: PacDot, Cell: c, Value: value}
}

func NewPowerPellet(c Cell, value int) *Pickup {
	return &Pickup{Kind: PowerPellet, Cell: c, Value: value}
}

func NewFruit(c Cell, typ, value int, lifetime float64) *Pickup {
	return &Pickup{Kind: Fruit, Cell: c, Value: value, FruitType: typ, Lifetime: lifetime}
}

func (p *Pickup) Size() float64 {
	switch p.Kind {
	case PowerPellet:
		return PowerPelletSize
	case Fruit:
		return FruitSize
	default:
		return PacDotSize
	}
}

func (p *Pickup) Area() Rect {
	return CenteredRect(p.Cell.Vec(), p.Size())
}

// Center is the middle of the pickup's cell.
func (p *Pickup) Center() Vec {
	return p.Cell.Vec().Add(Vec{X: 0.5, Y: 0.5})
}
