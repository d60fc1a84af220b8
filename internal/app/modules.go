package app

import (
	"github.com/coreloop/resdepot/internal/registry"
	"github.com/coreloop/resdepot/modules/envbag"
	"github.com/coreloop/resdepot/modules/httpdoc"
	"github.com/coreloop/resdepot/modules/propbag"
	"github.com/coreloop/resdepot/modules/sockchan"
	"github.com/coreloop/resdepot/modules/textfile"
)

// coreModules lists the resource modules every App registers by default.
// Passing explicit modules to New replaces this set entirely.
var coreModules = []registry.Module{
	&textfile.Module{},
	&httpdoc.Module{},
	&propbag.Module{},
	&sockchan.Module{},
	&envbag.Module{},
}
