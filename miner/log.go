package miner

import (
	"github.com/minernet/minerd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("MINR")
