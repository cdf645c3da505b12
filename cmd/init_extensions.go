/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, resolves the attribute name and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before configuration is loaded. The service is created
// once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/attr"
	"github.com/jpl-au/ftag/internal/config"
	"github.com/jpl-au/ftag/internal/tagging"
	"github.com/jpl-au/ftag/internal/validate"
)

// noStoreCommands lists commands that bypass automatic service initialisation.
// Built dynamically from bootstrap commands plus extension-declared storeless commands.
var noStoreCommands map[string]bool

// buildNoStoreCommands creates the set of commands that skip initialisation.
//
// Bootstrap commands (guide, config, help) must work even when the
// configured attribute name is invalid, so the user can read about it and
// fix it. Extensions can implement the Storeless interface to add their own.
func buildNoStoreCommands() map[string]bool {
	cmds := map[string]bool{
		// Core bootstrap commands - always storeless
		"guide":      true,
		"config":     true,
		"help":       true,
		"completion": true,
	}

	// Add extension-declared storeless commands
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Storeless); ok {
			for _, name := range s.NoStoreCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the tag service and injects it into extensions.
//
// sync.Once guarantees one service per process, shared by every extension,
// even if several commands trigger initialisation.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		name := Attr(cfg)
		if err := validate.Attribute(name); err != nil {
			initErr = err
			return
		}

		svc := tagging.New(attr.NewXattr(name))
		extContext = extension.NewContext(svc, cfg)
		svc.SetExtensionContext(extContext)

		// Inject the shared context into all Initializable extensions.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build noStoreCommands after all extensions are registered
		noStoreCommands = buildNoStoreCommands()
	})
}
