package game

// ErrEmptyStockAndWaste is returned by a draw when there is nothing left to
// draw and nothing to recycle.
type ErrEmptyStockAndWaste struct {
}

func (e *ErrEmptyStockAndWaste) Error() string {
	return "stock and waste are both empty"
}

func IsEmptyStockAndWaste(err error) bool {
	_, ok := err.(*ErrEmptyStockAndWaste)
	return ok
}

// ErrGameOver is returned when a mutation is attempted on a finished game.
type ErrGameOver struct {
}

func (e *ErrGameOver) Error() string {
	return "game is over"
}

func IsGameOver(err error) bool {
	_, ok := err.(*ErrGameOver)
	return ok
}
