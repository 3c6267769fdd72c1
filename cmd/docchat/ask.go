package main

import (
	"fmt"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/pipeline"
	"github.com/fwojciec/docchat/vector"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	version, model, entries, err := deps.Store.LoadCorpus(deps.Ctx)
	if err != nil {
		if docchat.ErrorCode(err) == docchat.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no documents ingested yet. Use 'docchat ingest' first.")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		}
		return err
	}

	// The corpus was embedded with a specific model; querying it with a
	// different one produces meaningless similarities.
	if model != deps.EmbeddingModel {
		fmt.Fprintf(deps.Stderr, "error: corpus was embedded with %q but EMBEDDING_MODEL is %q, re-ingest or change the setting\n", model, deps.EmbeddingModel)
		return docchat.Errorf(docchat.ECONFLICT, "embedding model mismatch")
	}

	p := pipeline.NewPipeline(
		vector.Load(version, deps.Embedder, entries),
		deps.Generator,
		deps.Checkpoints,
		deps.Logger,
	)
	p.TopK = c.TopK

	answer, err := p.Converse(deps.Ctx, c.Thread, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
