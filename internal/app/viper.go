package app

import (
	"fmt"

	"github.com/saradorri/prospera/internal/config"
)

func (a *application) setupViper(path string) error {
	env := config.GetEnvironment()

	c, err := config.Load(path, env)
	if err != nil {
		return err
	}
	a.config = c

	fmt.Printf("[x] Config loaded successfully (%s)\n", env)
	return nil
}
