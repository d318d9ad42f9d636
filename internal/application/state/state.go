package state

import "fmt"

// Name identifies a game state the scene manager can switch to
type Name int

const (
	Boot Name = iota
	Load
	Play
	Menu
	GameOver
	LoadMenu
	Settings
)

var names = [...]string{
	Boot:     "Boot",
	Load:     "Load",
	Play:     "Play",
	Menu:     "Menu",
	GameOver: "GameOver",
	LoadMenu: "LoadMenu",
	Settings: "Settings",
}

// String returns the string representation of the state name
func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return "Unknown"
	}
	return names[n]
}

// All returns every state name in declaration order
func All() []Name {
	all := make([]Name, len(names))
	for i := range names {
		all[i] = Name(i)
	}
	return all
}

// Parse converts a state's string form back to its Name
func Parse(s string) (Name, error) {
	for i, n := range names {
		if n == s {
			return Name(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", s)
}
