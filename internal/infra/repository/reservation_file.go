package repository

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BruksfildServices01/reservation-api/internal/csvcodec"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
)

// ReservationFileStore keeps reservations in an append-only text file: one
// header line followed by one encoded record per line.
//
// A single mutex guards the header check and creation, every append, every
// read and every snapshot, so concurrent callers never see or produce a
// partially written line. The store does not validate records; callers must
// run reservation.Validate first.
type ReservationFileStore struct {
	path string

	// if true, calls file.Sync() after every append
	SyncWrite bool

	mu sync.Mutex
}

var _ domain.Repository = (*ReservationFileStore)(nil)

func NewReservationFileStore(path string) *ReservationFileStore {
	return &ReservationFileStore{path: path}
}

// Path returns the backing file path.
func (s *ReservationFileStore) Path() string {
	return s.path
}

// --------------------------------------------------
// Header
// --------------------------------------------------

// EnsureInitialized creates the store file with its header when the file does
// not exist. An existing file is left untouched, whatever it contains.
func (s *ReservationFileStore) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureInitialized()
}

// must be called with s.mu held
func (s *ReservationFileStore) ensureInitialized() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return ioErr("stat", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ioErr("mkdir", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return ioErr("create", s.path, err)
	}

	_, err = f.WriteString(domain.Header + "\n")
	if err == nil && s.SyncWrite {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// a headerless file would never be repaired
		_ = os.Remove(s.path)
		return ioErr("write header", s.path, err)
	}
	return nil
}

// --------------------------------------------------
// Append
// --------------------------------------------------

// Append writes r as one line at the end of the store, creating the store
// first if needed. The line is written with a single call; if that write
// fails the file is truncated back to its previous size.
func (s *ReservationFileStore) Append(r domain.Record) error {
	line := csvcodec.EncodeRecord(r.Fields()...) + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return ioErr("open", s.path, err)
	}

	err = appendLine(f, line, s.SyncWrite)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = ioErr("close", s.path, cerr)
	}
	return err
}

func appendLine(f *os.File, line string, sync bool) error {
	st, err := f.Stat()
	if err != nil {
		return ioErr("stat", f.Name(), err)
	}
	before := st.Size()

	n, err := f.WriteString(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		if n > 0 {
			_ = f.Truncate(before)
		}
		return ioErr("write", f.Name(), err)
	}

	if sync {
		if err := f.Sync(); err != nil {
			return ioErr("sync", f.Name(), err)
		}
	}
	return nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

// ReadAll returns every record in file order. The first line is skipped as
// the header. Empty lines and lines decoding to fewer than six fields are
// dropped. A missing file yields an empty slice and no error.
func (s *ReservationFileStore) ReadAll() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []domain.Record{}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, ioErr("open", s.path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	header := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, ioErr("read", s.path, err)
		}
		eof := err != nil

		if header {
			header = false
		} else if r, ok := parseLine(line); ok {
			records = append(records, r)
		}

		if eof {
			break
		}
	}
	return records, nil
}

func parseLine(line string) (domain.Record, bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return domain.Record{}, false
	}
	return domain.FromFields(csvcodec.DecodeLine(line))
}

// --------------------------------------------------
// Snapshot
// --------------------------------------------------

// Snapshot copies the raw store file to w. A missing file copies nothing.
func (s *ReservationFileStore) Snapshot(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, ioErr("open", s.path, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, ioErr("copy", s.path, err)
	}
	return n, nil
}
