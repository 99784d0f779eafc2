package mempool

import (
	"github.com/minernet/minerd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("MEMP")
