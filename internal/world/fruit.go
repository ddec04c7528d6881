package world

import "github.com/GoncaloRod/PacmanWars/internal/entities"

// updateFruit ages the fruit on the board and puts a new one out each time
// the eaten pac-dot count crosses a threshold.
func (w *World) updateFruit() {
	kept := w.Fruits[:0]
	for _, f := range w.Fruits {
		if f.Lifetime > 0 {
			f.Lifetime -= w.dt
			if f.Lifetime <= 0 {
				w.emit(Event{Kind: EventFruitExpired, Cell: f.Cell})
				continue
			}
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(w.Fruits); i++ {
		w.Fruits[i] = nil
	}
	w.Fruits = kept

	thresholds := w.cfg.Fruit.DotThresholds
	for w.fruitsSpawned < len(thresholds) && w.dotsEaten >= thresholds[w.fruitsSpawned] {
		w.spawnFruit()
	}
}

func (w *World) spawnFruit() {
	n := w.fruitsSpawned
	w.fruitsSpawned++
	if len(w.fruitSpots) == 0 {
		return
	}
	typ := n
	if typ >= entities.FruitTypes {
		typ = entities.FruitTypes - 1
	}
	spot := w.fruitSpots[n%len(w.fruitSpots)]
	f := entities.NewFruit(spot, typ, w.cfg.Scoring.FruitValue(typ), w.cfg.Fruit.Seconds)
	w.Fruits = append(w.Fruits, f)
	w.emit(Event{Kind: EventFruitSpawned, Points: f.Value, Cell: spot})
}
