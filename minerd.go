package main

import (
	"context"

	"github.com/minernet/minerd/infrastructure/logger"
	"github.com/minernet/minerd/mempool"
	"github.com/minernet/minerd/miner"
	"github.com/minernet/minerd/mining"
	"github.com/minernet/minerd/util/hexfield"
	"github.com/minernet/minerd/wire"
)

// mineBlock runs a single end-to-end mining attempt: read the candidate
// pool, filter it through the admission rules, assemble a block template,
// search the nonce space and write the result artifact.
func mineBlock(cfg *configFlags, interrupt <-chan struct{}) error {
	defer logger.LogAndMeasureExecutionTime(log, "mineBlock")()

	transactions, err := mempool.ReadMempool(cfg.MempoolDir)
	if err != nil {
		return err
	}
	validTransactions := mempool.FilterValid(transactions)

	policy := &mining.Policy{
		BlockMaxSize:   wire.MaxBlockSize,
		PairwiseMerkle: cfg.PairwiseMerkle,
	}
	generator := mining.NewBlkTmplGenerator(policy, mining.NewTimeSource())
	template, err := generator.NewBlockTemplate(validTransactions, cfg.PrevBlock)
	if err != nil {
		return err
	}
	block := template.Block

	prefix, err := miner.SerializeHeaderPrefix(&block.Header)
	if err != nil {
		return err
	}
	target, err := hexfield.HexToBig(cfg.Target)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()
	spawn("main-interruptWatcher", func() {
		select {
		case <-interrupt:
			cancel()
		case <-ctx.Done():
		}
	})

	log.Infof("Mining a block with %d transactions against target %s",
		len(block.Transactions), cfg.Target)
	result, err := miner.Search(ctx, prefix, target, cfg.NumWorkers)
	if err != nil {
		return err
	}

	// The winning nonce is the only header mutation after assembly.
	block.Header.Nonce = result.Nonce
	log.Infof("Found block %s with nonce %d", result.HashHex, result.Nonce)

	err = writeResult(cfg.OutFile, block)
	if err != nil {
		return err
	}
	log.Infof("Wrote result to %s", cfg.OutFile)
	return nil
}
