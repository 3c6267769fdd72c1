package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docchat"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	if len(c.Files) == 0 && c.URL == "" {
		fmt.Fprintln(deps.Stderr, "error: nothing to ingest, pass files and/or --url")
		return docchat.Errorf(docchat.EINVALID, "no input provided")
	}

	files := make([]docchat.File, 0, len(c.Files))
	for _, path := range c.Files {
		kind := kindForPath(path)
		if kind == docchat.KindUnknown {
			fmt.Fprintf(deps.Stderr, "skipping %s: unsupported file type\n", path)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		files = append(files, docchat.File{
			Name: filepath.Base(path),
			Kind: kind,
			Data: data,
		})
	}

	stats, err := deps.Ingester.Ingest(deps.Ctx, files, c.URL, c.MaxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d file(s)", stats.Files-stats.Failed)
	if stats.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", stats.Failed)
	}
	if stats.Pages > 0 {
		fmt.Fprintf(deps.Stdout, " and %d page(s)", stats.Pages)
	}
	fmt.Fprintf(deps.Stdout, ": %d chunk(s)", stats.Chunks)
	if stats.Tokens > 0 {
		fmt.Fprintf(deps.Stdout, ", %d token(s)", stats.Tokens)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Previous conversations (if any) were reset.")
	return nil
}

// mimeByExtension covers the supported upload formats. The stdlib mime
// table does not include the OOXML types on every platform, so the mapping
// is explicit.
var mimeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// kindForPath maps a file extension to its upload kind.
func kindForPath(path string) docchat.FileKind {
	return docchat.KindForMIME(mimeByExtension[strings.ToLower(filepath.Ext(path))])
}
