package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/crawl"
	"github.com/fwojciec/docchat/docx"
	dcexcelize "github.com/fwojciec/docchat/excelize"
	"github.com/fwojciec/docchat/gemini"
	"github.com/fwojciec/docchat/goquery"
	dchttp "github.com/fwojciec/docchat/http"
	"github.com/fwojciec/docchat/ingest"
	"github.com/fwojciec/docchat/pdf"
	"github.com/fwojciec/docchat/pptx"
	dcslog "github.com/fwojciec/docchat/slog"
	"github.com/fwojciec/docchat/sqlite"
	"github.com/fwojciec/docchat/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Store       docchat.CorpusStore
	Checkpoints docchat.Checkpointer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docchat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docchat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCCHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Store = sqlite.NewCorpusStore(m.DB)
	m.Checkpoints = sqlite.NewCheckpointer(m.DB)
	deps.Store = m.Store
	deps.Checkpoints = m.Checkpoints

	// Both ingestion and asking talk to the Gemini API.
	if cmd == "ingest" || cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		embedder := gemini.NewEmbedder(client, os.Getenv("EMBEDDING_MODEL"))
		deps.Embedder = embedder
		deps.EmbeddingModel = embedder.Model()
		deps.Generator = gemini.NewGenerator(client, os.Getenv("MODEL_NAME"))
	}

	if cmd == "ingest" {
		fetcher := dcslog.NewLoggingFetcher(dchttp.NewFetcher(), logger)
		defer fetcher.Close()

		crawler := &crawl.Crawler{
			Fetcher:  fetcher,
			Pages:    goquery.NewParser(),
			Fallback: trafilatura.NewExtractor(),
			Sitemaps: dcslog.NewLoggingSitemapService(dchttp.NewSitemapService(nil), logger),
			Limiter:  crawl.NewDomainLimiter(1.0),
			Logger:   logger,
		}

		var tokens docchat.TokenCounter
		if counter, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			tokens = counter
		} else {
			logger.Warn("token counter unavailable", slog.Any("error", err))
		}

		deps.Ingester = &ingest.Service{
			Extractors: map[docchat.FileKind]docchat.Extractor{
				docchat.KindPDF:   pdf.NewExtractor(),
				docchat.KindWord:  docx.NewExtractor(),
				docchat.KindPPT:   pptx.NewExtractor(),
				docchat.KindExcel: dcexcelize.NewExtractor(),
			},
			Crawler:        crawler,
			Embedder:       deps.Embedder,
			Store:          m.Store,
			EmbeddingModel: deps.EmbeddingModel,
			Tokens:         tokens,
			Logger:         logger,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for local token counting; the tokenizer package
// lags behind the newest generation models.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("DOCCHAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docchat.db"
	}
	dir := filepath.Join(home, ".docchat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docchat.db")
}
