// Package ffmpeg wraps the external remux tool behind a narrow, testable
// client.
package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Remuxer defines the behaviour required by the export pipeline.
type Remuxer interface {
	Remux(ctx context.Context, clipDir, manifest, outPath string) error
}

// Executor abstracts command execution for testability. workDir becomes the
// process working directory so relative manifest references resolve inside
// the clip folder.
type Executor interface {
	Run(ctx context.Context, workDir, binary string, args []string, onOutput func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an ffmpeg client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{
		binary: binary,
		exec:   commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// diagnosticTailLines bounds how much tool output is kept for error
// reporting.
const diagnosticTailLines = 8

// Remux copies the clip's video and first audio stream (if any) out of the
// fragment manifest into a faststart MP4 at outPath. ffmpeg runs inside
// clipDir so the manifest's relative fragment references resolve.
func (c *Client) Remux(ctx context.Context, clipDir, manifest, outPath string) error {
	if clipDir == "" {
		return errors.New("clip directory required")
	}
	if manifest == "" {
		return errors.New("manifest name required")
	}
	if outPath == "" {
		return errors.New("output path required")
	}

	var tail []string
	err := c.exec.Run(ctx, clipDir, c.binary, remuxArgs(manifest, outPath), func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		if len(tail) == diagnosticTailLines {
			copy(tail, tail[1:])
			tail[len(tail)-1] = line
			return
		}
		tail = append(tail, line)
	})
	if err != nil {
		if len(tail) > 0 {
			return fmt.Errorf("ffmpeg remux: %w: %s", err, strings.Join(tail, "; "))
		}
		return fmt.Errorf("ffmpeg remux: %w", err)
	}
	return nil
}

// remuxArgs builds the fixed stream-copy invocation. The optional audio map
// (0:a:0?) keeps silent clips exportable.
func remuxArgs(manifest, outPath string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", manifest,
		"-map", "0:v:0",
		"-map", "0:a:0?",
		"-c", "copy",
		"-movflags", "+faststart",
		outPath,
	}
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, workDir, binary string, args []string, onOutput func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Dir = workDir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			forward(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	forward := func(line string) {
		if onOutput != nil {
			onOutput(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}

	wg.Add(2)
	go scan(stdout, forward)
	go scan(stderr, forward)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
