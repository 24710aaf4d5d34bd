package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader reads lines while honoring context cancellation.
type NonBlockingReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewNonBlockingReader creates a new non-blocking reader.
func NewNonBlockingReader(reader io.Reader) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads a line and trims surrounding whitespace. A cancelled
// context returns ErrInputCancelled; the pending read finishes in the
// background.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && value != "" {
			err = nil
		}
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

// CredentialPrompter asks for an email and password. On a terminal the
// password is read with echo disabled; otherwise it is read as a line.
type CredentialPrompter struct {
	lines    *NonBlockingReader
	writer   io.Writer
	readPass func() ([]byte, error)
}

// NewCredentialPrompter prompts on w and reads from in.
func NewCredentialPrompter(in io.Reader, w io.Writer) *CredentialPrompter {
	p := &CredentialPrompter{
		lines:  NewNonBlockingReader(in),
		writer: w,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readPass = func() ([]byte, error) {
			return term.ReadPassword(fd)
		}
	}
	return p
}

// Ask prompts for a visible value.
func (p *CredentialPrompter) Ask(ctx context.Context, label string) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt(label)); err != nil {
		return "", err
	}
	return p.lines.ReadLine(ctx)
}

// AskSecret prompts for a value that is not echoed on a terminal.
func (p *CredentialPrompter) AskSecret(ctx context.Context, label string) (string, error) {
	if p.readPass == nil {
		return p.Ask(ctx, label)
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt(label)); err != nil {
		return "", err
	}
	secret, err := p.readPass()
	_, _ = fmt.Fprintln(p.writer)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}
	return string(secret), nil
}
