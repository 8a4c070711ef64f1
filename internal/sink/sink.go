// Package sink writes rendered classes to storage. Storage is accessed
// through afs, so the output root can be a local directory or any URL afs
// supports.
package sink

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/tliron/commonlog"
	"github.com/viant/afs"

	"github.com/jhump/jpoet"
)

var log = commonlog.GetLogger("jpoet.sink")

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Status describes what happened to a single output file.
type Status int

const (
	// Unchanged means the file already had the rendered content.
	Unchanged Status = iota
	// Written means the file was created or replaced.
	Written
	// Pending means the file would have been written, but the Writer is in
	// dry-run mode.
	Pending
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Written:
		return "written"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of writing one class.
type Result struct {
	URL    string
	Status Status
}

// Writer writes each class to <root>/<package directories>/<Name>.java.
// Files whose content would not change are left alone.
type Writer struct {
	fs     afs.Service
	root   string
	dryRun bool
}

// NewWriter returns a writer that stores files under root. When dryRun is
// true, classes are rendered and compared but nothing is written.
func NewWriter(root string, dryRun bool) *Writer {
	return &Writer{
		fs:     afs.New(),
		root:   strings.TrimRight(root, "/"),
		dryRun: dryRun,
	}
}

// URL returns the location to which the given class is written.
func (w *Writer) URL(c *jpoet.Class) string {
	return w.root + "/" + filepath.ToSlash(jpoet.JavaFilePath(c))
}

// WriteAll writes all of the given classes, stopping at the first error. The
// results of the classes handled before the error are returned along with it.
func (w *Writer) WriteAll(ctx context.Context, classes ...*jpoet.Class) ([]Result, error) {
	results := make([]Result, 0, len(classes))
	for _, c := range classes {
		r, err := w.Write(ctx, c)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Write renders the given class and writes it, unless the existing file
// already holds the same content.
func (w *Writer) Write(ctx context.Context, c *jpoet.Class) (Result, error) {
	URL := w.URL(c)
	var buf bytes.Buffer
	if err := jpoet.WriteJavaFile(&buf, c); err != nil {
		return Result{}, fmt.Errorf("render %s: %w", URL, err)
	}
	same, err := w.unchanged(ctx, URL, buf.Bytes())
	if err != nil {
		return Result{}, err
	}
	switch {
	case same:
		log.Debugf("%s: unchanged", URL)
		return Result{URL: URL, Status: Unchanged}, nil
	case w.dryRun:
		log.Debugf("%s: dry run, not written", URL)
		return Result{URL: URL, Status: Pending}, nil
	}
	if err := w.fs.Upload(ctx, URL, 0644, bytes.NewReader(buf.Bytes())); err != nil {
		return Result{}, fmt.Errorf("cannot write %s: %w", URL, err)
	}
	log.Debugf("%s: wrote %d bytes", URL, buf.Len())
	return Result{URL: URL, Status: Written}, nil
}

func (w *Writer) unchanged(ctx context.Context, URL string, content []byte) (bool, error) {
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("cannot check %s: %w", URL, err)
	}
	if !exists {
		return false, nil
	}
	existing, err := w.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("cannot read %s: %w", URL, err)
	}
	if len(existing) != len(content) {
		return false, nil
	}
	oldHash, err := Hash(existing)
	if err != nil {
		return false, err
	}
	newHash, err := Hash(content)
	if err != nil {
		return false, err
	}
	return oldHash == newHash, nil
}

// Hash returns the 64-bit HighwayHash of data.
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
