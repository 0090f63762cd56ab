package app

import (
	"github.com/vk/toolgraphgo/internal/aspect"
	"github.com/vk/toolgraphgo/internal/traverse"
)

// coreVisitors is the definitive list of all graph visitors that are compiled
// into the toolgraphgo binary.
var coreVisitors = []traverse.Visitor{
	&aspect.ToolchainAspect{},
}
