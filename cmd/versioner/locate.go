package main

import (
	"fmt"
	"github.com/viant/versioning/locator"
)

// LocateCmd implements the 'locate' command
type LocateCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Directory or storage URL"`
	Up  bool   `help:"Search parent directories of a local path"`
}

func (l *LocateCmd) Run(global *Global) error {
	service := locator.New()
	var (
		location string
		ok       bool
	)
	if l.Up {
		location, ok = service.Nearest(global.Context, l.Dir)
	} else {
		location, ok = service.Locate(global.Context, l.Dir)
	}
	if !ok {
		return fmt.Errorf("no descriptor found in %s", l.Dir)
	}
	_, err := fmt.Fprintln(global.Out, location)
	return err
}
