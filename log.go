// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/minernet/minerd/infrastructure/logger"
	"github.com/minernet/minerd/util/panics"
)

var (
	log   = logger.RegisterSubSystem("MNRD")
	spawn = panics.GoroutineWrapperFunc(log)
)

func initLog(logFile, errLogFile string) {
	logger.InitLog(logFile, errLogFile)
}
