package rng

import "fmt"

// stateMismatch reports a snapshot restored into the wrong generator family.
func stateMismatch(want string, got State) error {
	return fmt.Errorf("rng: cannot restore %s state into a %s generator", got.family(), want)
}
