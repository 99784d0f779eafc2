package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/minernet/minerd/infrastructure/logger"
	"github.com/minernet/minerd/util/hashes"
	"github.com/minernet/minerd/util/hexfield"
	"github.com/minernet/minerd/version"
)

const (
	defaultLogFilename    = "minerd.log"
	defaultErrLogFilename = "minerd_err.log"

	defaultMempoolDir = "mempool"
	defaultOutFile    = "output.txt"

	// defaultTarget requires roughly 16 leading zero bits in the block hash.
	defaultTarget = "0000ffff00000000000000000000000000000000000000000000000000000000"

	defaultPrevBlock = "000000000002d01c1fccc21636b607dfd930d31d01c3a62104612a1719011250"
)

var (
	// Default configuration options
	defaultHomeDir    = btcutil.AppDataDir("minerd", false)
	defaultLogFile    = filepath.Join(defaultHomeDir, defaultLogFilename)
	defaultErrLogFile = filepath.Join(defaultHomeDir, defaultErrLogFilename)
)

type configFlags struct {
	ShowVersion    bool          `short:"V" long:"version" description:"Display version information and exit"`
	MempoolDir     string        `long:"mempooldir" description:"Directory holding candidate transaction records, one JSON file per transaction"`
	OutFile        string        `long:"outfile" description:"File the solved block result is written to"`
	Target         string        `long:"target" description:"Mining target as a 256-bit hexadecimal value. The block hash must be strictly below it"`
	PrevBlock      string        `long:"prevblock" description:"Hash of the previous block, as a 256-bit hexadecimal value"`
	NumWorkers     int           `long:"numworkers" description:"Number of mining worker goroutines. Defaults to the number of CPUs"`
	Timeout        time.Duration `long:"timeout" description:"Maximum wall-clock time to search for a solution. 0 means no limit"`
	PairwiseMerkle bool          `long:"pairwisemerkle" description:"Compute the merkle root with the pairwise tree scheme instead of the default sequential scheme"`
	LogLevel       string        `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Profile        string        `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65536"`
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		MempoolDir: defaultMempoolDir,
		OutFile:    defaultOutFile,
		Target:     defaultTarget,
		PrevBlock:  defaultPrevBlock,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	if _, err := hexfield.HexToBig(cfg.Target); err != nil {
		return nil, errors.Wrapf(err, "--target %q is not a valid hexadecimal value", cfg.Target)
	}
	prevBlock, err := hex.DecodeString(cfg.PrevBlock)
	if err != nil || len(prevBlock) != hashes.DigestSize {
		return nil, errors.Errorf("--prevblock %q is not a 256-bit hexadecimal value", cfg.PrevBlock)
	}

	if cfg.NumWorkers < 0 {
		return nil, errors.New("--numworkers cannot be negative")
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("--timeout cannot be negative")
	}

	if cfg.Profile != "" {
		profilePort, err := strconv.Atoi(cfg.Profile)
		if err != nil || profilePort < 1024 || profilePort > 65535 {
			return nil, errors.New("The profile port must be between 1024 and 65535")
		}
	}

	initLog(defaultLogFile, defaultErrLogFile)
	err = logger.SetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
