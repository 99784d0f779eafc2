package mining

import (
	"github.com/minernet/minerd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("TMPL")
