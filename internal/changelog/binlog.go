package changelog

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// DefaultLogPath is where the desktop application keeps its audit trail.
const DefaultLogPath = "dat/bin/changelog.bin"

// streamHeader opens a fresh log file. It is written exactly once per file;
// appending sessions must not re-emit it so that multiple sessions
// concatenate into one valid stream.
var streamHeader = []byte{'F', 'P', 'P', 'S', 'L', 'O', 'G', 1}

// maxFrameSize bounds a single record so a corrupt length prefix cannot
// trigger an absurd allocation.
const maxFrameSize = 16 << 20

// Log is the append-only binary change log. All access, reads and writes
// alike, serialises through one mutex.
type Log struct {
	mu   sync.Mutex
	path string
}

// Open returns a log backed by the file at path. The file itself is created
// lazily on the first append.
func Open(path string) *Log {
	if path == "" {
		path = DefaultLogPath
	}

	return &Log{path: path}
}

// Path returns the location of the backing file.
func (l *Log) Path() string { return l.path }

// Append writes exactly one record and flushes it to disk. The parent
// directory is created on demand; the stream header is emitted only when the
// file is absent or empty.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	payload, err := json.Marshal(e)
	if err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("encoding entry: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("creating log directory: %w", err))
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("opening log file: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("stat log file: %w", err))
	}

	var frame []byte
	if info.Size() == 0 {
		frame = append(frame, streamHeader...)
	}
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(payload)))
	frame = append(frame, payload...)

	// Header and record go out in one write so a concurrent appender in
	// another process never observes a headerless file.
	if _, err := f.Write(frame); err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("appending entry: %w", err))
	}
	if err := f.Sync(); err != nil {
		return apperror.BinaryLogWrite(fmt.Errorf("flushing entry: %w", err))
	}

	return nil
}

// ReadAll replays the whole file in append order. A missing file is an empty
// log. End-of-file on a frame boundary terminates the replay cleanly; a torn
// frame or any other failure surfaces as a binary-log-read error, never as a
// partially decoded entry.
func (l *Log) ReadAll() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, apperror.BinaryLogRead(fmt.Errorf("opening log file: %w", err))
	}
	defer f.Close()

	r := bufio.NewReader(f)

	header := make([]byte, len(streamHeader))
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: no stream opened yet.
			return nil, nil
		}

		return nil, apperror.BinaryLogRead(fmt.Errorf("reading stream header: %w", err))
	}
	if string(header) != string(streamHeader) {
		return nil, apperror.BinaryLogRead(errors.New("stream header mismatch"))
	}

	var entries []Entry

	for {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return entries, nil
			}

			return nil, apperror.BinaryLogRead(fmt.Errorf("reading frame length: %w", err))
		}

		size := binary.BigEndian.Uint32(lenBuf[:])
		if size == 0 || size > maxFrameSize {
			return nil, apperror.BinaryLogRead(fmt.Errorf("invalid frame length %d", size))
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, apperror.BinaryLogRead(fmt.Errorf("reading frame payload: %w", err))
		}

		var e Entry
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, apperror.BinaryLogRead(fmt.Errorf("decoding entry: %w", err))
		}
		if !e.Valid() {
			return nil, apperror.BinaryLogRead(fmt.Errorf("ill-formed %s entry for %s", e.Op, e.EntityType))
		}

		entries = append(entries, e)
	}
}

// ReadByType replays the log and keeps entries for one entity type.
func (l *Log) ReadByType(entityType string) ([]Entry, error) {
	entries, err := l.ReadAll()
	if err != nil {
		return nil, err
	}

	return FilterByType(entries, entityType), nil
}

// ReadBetween replays the log and keeps entries whose timestamp falls in
// [from, to). A nil bound is unbounded on that end.
func (l *Log) ReadBetween(from, to *time.Time) ([]Entry, error) {
	entries, err := l.ReadAll()
	if err != nil {
		return nil, err
	}

	return FilterBetween(entries, from, to), nil
}

// Tail replays the log and keeps the last n entries.
func (l *Log) Tail(n int) ([]Entry, error) {
	entries, err := l.ReadAll()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if len(entries) <= n {
		return entries, nil
	}

	return entries[len(entries)-n:], nil
}

// FilterByType keeps entries for one entity type, preserving order.
func FilterByType(entries []Entry, entityType string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.EntityType == entityType {
			out = append(out, e)
		}
	}

	return out
}

// FilterBetween keeps entries whose timestamp falls in [from, to).
func FilterBetween(entries []Entry, from, to *time.Time) []Entry {
	if from == nil && to == nil {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if from != nil && e.Timestamp.Before(*from) {
			continue
		}
		if to != nil && !e.Timestamp.Before(*to) {
			continue
		}

		out = append(out, e)
	}

	return out
}
