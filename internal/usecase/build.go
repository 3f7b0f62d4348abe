package usecase

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"wikidex/internal/adapter/index"
	"wikidex/internal/domain"
	"wikidex/internal/port"
)

// titleHeader marks the first line of every materialized article.
const titleHeader = "# "

// BuildUseCase rebuilds an index from the article tree. Extraction is
// an embarrassingly parallel map over the file list, fanned out to a
// bounded worker pool; all index writes funnel through the one Writer
// on the calling goroutine. Any error invalidates the whole build.
type BuildUseCase struct {
	walker  port.FileWalker
	workers int
}

func NewBuildUseCase(walker port.FileWalker, workers int) *BuildUseCase {
	if workers < 1 {
		workers = 1
	}
	return &BuildUseCase{walker: walker, workers: workers}
}

// BuildProgress is called after each file is merged into the index.
type BuildProgress func(done, total int)

type extracted struct {
	path  string
	value string
	ok    bool
}

// Build enumerates article files under sourceDir, extracts the field
// for the writer's mode in parallel, and merges results sequentially.
// The caller owns the writer and must Close it to commit; on error the
// index directory must be treated as corrupt.
func (u *BuildUseCase) Build(ctx context.Context, sourceDir string, w *index.Writer, mode index.Mode, onProgress BuildProgress) (domain.BuildResult, error) {
	var result domain.BuildResult

	files, err := u.walker.Walk(sourceDir)
	if err != nil {
		return result, fmt.Errorf("walk %s: %w", sourceDir, err)
	}
	result.FilesSeen = len(files)

	g, gctx := errgroup.WithContext(ctx)
	paths := make(chan string)
	out := make(chan extracted, u.workers)

	g.Go(func() error {
		defer close(paths)
		for _, f := range files {
			select {
			case paths <- f.Path:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var workers sync.WaitGroup
	for i := 0; i < u.workers; i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			for path := range paths {
				e, err := extractField(path, mode)
				if err != nil {
					return err
				}
				select {
				case out <- e:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(out)
	}()

	var writeErr error
	done := 0
	for e := range out {
		done++
		if writeErr != nil {
			continue // drain so workers can finish
		}
		if !e.ok {
			result.Skipped++
			continue
		}
		if err := w.Add(e.path, e.value); err != nil {
			writeErr = err
			continue
		}
		result.DocsIndexed++
		if onProgress != nil {
			onProgress(done, len(files))
		}
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("extract articles: %w", err)
	}
	if writeErr != nil {
		return result, fmt.Errorf("write index: %w", writeErr)
	}
	if err := w.Flush(); err != nil {
		return result, err
	}
	return result, nil
}

// extractField pulls the indexable field out of one article file. In
// title mode only the first line is read; files without the title
// header are skipped. In content mode the whole file is indexed,
// header included.
func extractField(path string, mode index.Mode) (extracted, error) {
	if mode == index.ModeContent {
		data, err := os.ReadFile(path)
		if err != nil {
			return extracted{}, fmt.Errorf("read %s: %w", path, err)
		}
		return extracted{path: path, value: string(data), ok: true}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return extracted{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return extracted{}, fmt.Errorf("read %s: %w", path, err)
		}
		return extracted{path: path}, nil // empty file, skip
	}

	line := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(line, titleHeader) {
		return extracted{path: path}, nil
	}
	return extracted{path: path, value: strings.TrimPrefix(line, titleHeader), ok: true}, nil
}
