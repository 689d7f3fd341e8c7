package core

import "github.com/mikey-austin/dumpdie/pkg/dump"

// Config is the resolved dd configuration.
type Config struct {
	Options    dump.Options
	Format     string
	Color      bool
	ConfigPath string
}
