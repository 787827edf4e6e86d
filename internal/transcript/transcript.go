// Package transcript provides line-oriented input and output for the study
// session, and a Recorder that keeps a chronological copy of both.
package transcript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/vytor/flashcards/internal/logger"
)

// LineSource yields one line of input at a time, without the line break.
// It returns io.EOF when the input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// LineSink writes one line of output at a time.
type LineSink interface {
	WriteLine(line string) error
}

type readerSource struct {
	sc *bufio.Scanner
}

// MaxLineSize is the longest input line a LineSource accepts.
const MaxLineSize = 1 << 20

// NewSource reads lines from r.
func NewSource(r io.Reader) LineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &readerSource{sc: sc}
}

func (s *readerSource) ReadLine() (string, error) {
	if s.sc.Scan() {
		return strings.TrimRight(s.sc.Text(), "\r"), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type writerSink struct {
	w io.Writer
}

// NewSink writes lines to w, each followed by a newline.
func NewSink(w io.Writer) LineSink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// Recorder wraps a source and a sink and remembers every line passing
// through either of them, in the order they happened.
type Recorder struct {
	src LineSource
	dst LineSink

	mu    sync.Mutex
	lines []string
}

// NewRecorder decorates src and dst.
func NewRecorder(src LineSource, dst LineSink) *Recorder {
	return &Recorder{src: src, dst: dst}
}

func (r *Recorder) record(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// ReadLine implements LineSource.
func (r *Recorder) ReadLine() (string, error) {
	line, err := r.src.ReadLine()
	if err != nil {
		return "", err
	}
	r.record(line)
	return line, nil
}

// WriteLine implements LineSink.
func (r *Recorder) WriteLine(line string) error {
	r.record(line)
	return r.dst.WriteLine(line)
}

// Lines returns a copy of the transcript so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Save writes the transcript to path, replacing any previous content, and
// returns the number of lines written.
func (r *Recorder) Save(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("transcript")
	lines := r.Lines()
	log.Debug("saving transcript: path=%s, lines=%d", path, len(lines))

	f, err := os.Create(path)
	if err != nil {
		log.Error("failed to create transcript file: %v", err)
		return 0, err
	}

	bw := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			f.Close()
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return len(lines), nil
}
