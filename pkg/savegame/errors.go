package savegame

// ErrCorruptSave is returned when a save blob cannot be loaded into a
// consistent game state. Callers are expected to fall back to a new game
// rather than crash.
type ErrCorruptSave struct {
	Reason string
}

func (e *ErrCorruptSave) Error() string {
	return "corrupt save: " + e.Reason
}

func IsCorruptSave(err error) bool {
	_, ok := err.(*ErrCorruptSave)
	return ok
}
