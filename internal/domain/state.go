package domain

import "time"

// State — явное состояние жизненного цикла агрегата,
// выводимое из метки мягкого удаления.
type State int

const (
	Active State = iota
	Deleted
)

// StateOf возвращает состояние агрегата по метке удаления.
// Единственная точка, где жизненный цикл выводится из таймстемпов.
func StateOf(deletedAt *time.Time) State {
	if deletedAt != nil {
		return Deleted
	}

	return Active
}

func (s State) String() string {
	if s == Deleted {
		return "deleted"
	}

	return "active"
}
