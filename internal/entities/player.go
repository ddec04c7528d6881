package entities

// Actor hitboxes are slightly smaller than a tile so that two actors one
// cell apart never touch.
const ActorHitbox = 0.75

type Player struct {
	Mover
	Number     int
	Start      Cell
	DesiredDir Direction
	Score      int
	Lives      int
	// Invulnerable counts down the seconds of immunity after a respawn.
	Invulnerable float64
}

func NewPlayer(number int, start Cell, lives int) *Player {
	p := &Player{Number: number, Start: start, Lives: lives}
	p.Place(start)
	return p
}

func (p *Player) AddPoints(points int) {
	p.Score += points
}

// Active reports whether the player still takes part in the match.
func (p *Player) Active() bool {
	return p.Lives > 0
}

func (p *Player) Vulnerable() bool {
	return p.Active() && p.Invulnerable <= 0
}

// Area is the pickup hitbox: the whole tile under the player.
func (p *Player) Area() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: 1, H: 1}
}

func (p *Player) Hitbox() Rect {
	return CenteredRect(p.Pos, ActorHitbox)
}

// Respawn sends the player back to its start cell facing nowhere.
func (p *Player) Respawn(invulnerable float64) {
	p.Place(p.Start)
	p.Dir = DirNone
	p.DesiredDir = DirNone
	p.Invulnerable = invulnerable
}
