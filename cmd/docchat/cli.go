package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx            context.Context
	Stdout         io.Writer
	Stderr         io.Writer
	Logger         *slog.Logger
	Store          docchat.CorpusStore
	Checkpoints    docchat.Checkpointer
	Embedder       docchat.Embedder
	EmbeddingModel string
	Generator      docchat.Generator
	Ingester       *ingest.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest  IngestCmd  `cmd:"" help:"Build a new corpus from files and/or a website"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about the ingested corpus"`
	Threads ThreadsCmd `cmd:"" help:"List conversation threads"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Files    []string `arg:"" optional:"" type:"existingfile" help:"Files to ingest (pdf, docx, pptx, xlsx)"`
	URL      string   `short:"u" help:"Seed URL to crawl"`
	MaxPages int      `short:"m" default:"5" help:"Maximum number of pages to crawl"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the ingested content"`
	Thread   string `short:"t" default:"default" help:"Conversation thread to continue"`
	TopK     int    `short:"k" default:"5" help:"Number of chunks to retrieve"`
}

// ThreadsCmd is the "threads" subcommand.
type ThreadsCmd struct{}
