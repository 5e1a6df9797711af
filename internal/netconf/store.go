package netconf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const fileExt = ".conf"

// Store reads and writes records in a networks directory.
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewStore returns a store rooted at dir. A nil logger discards output.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the networks directory.
func (s *Store) Dir() string { return s.dir }

// FileName returns the record file name for ssid.
func FileName(ssid string) string {
	return url.QueryEscape(ssid) + fileExt
}

// SSIDFromFileName reverses FileName. ok is false for names that are not
// record files.
func SSIDFromFileName(name string) (ssid string, ok bool) {
	if !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	ssid, err := url.QueryUnescape(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", false
	}
	return ssid, true
}

// Path returns the record path for ssid.
func (s *Store) Path(ssid string) string {
	return filepath.Join(s.dir, FileName(ssid))
}

// EnsureDir creates the networks directory if needed.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create networks directory: %w", err)
	}
	return nil
}

// Save writes rec, replacing any existing record for the same SSID.
// The write goes to a temporary file that is renamed into place.
func (s *Store) Save(rec Record) error {
	if rec.SSID == "" {
		return fmt.Errorf("cannot save a network without an SSID")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.EnsureDir(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := rec.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	path := s.Path(rec.SSID)
	if err := writeAtomic(path, buf.Bytes(), 0600); err != nil {
		return err
	}

	s.logger.Info("Saved network configuration",
		zap.String("ssid", rec.SSID),
		zap.String("path", path),
		zap.Bool("open", rec.Open()))
	return nil
}

// Load returns the record for ssid, or ErrNotFound.
func (s *Store) Load(ssid string) (Record, error) {
	path := s.Path(ssid)
	rec, err := readRecord(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, fmt.Errorf("%s: %w", ssid, ErrNotFound)
	}
	if err != nil {
		return Record{}, err
	}
	if rec.SSID == "" {
		rec.SSID = ssid
	}
	return rec, nil
}

// Passphrase returns the saved key for ssid. ok is false when nothing is
// saved or the network is open.
func (s *Store) Passphrase(ssid string) (key string, ok bool) {
	rec, err := s.Load(ssid)
	if err != nil || rec.Open() {
		return "", false
	}
	return rec.Passphrase, true
}

// List returns every readable record sorted by SSID in descending order. Files that fail to
// parse are skipped with a warning. A missing directory yields no records.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list networks directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ssid, ok := SSIDFromFileName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		rec, err := readRecord(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable network configuration",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		if rec.SSID == "" {
			rec.SSID = ssid
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SSID > records[j].SSID
	})
	return records, nil
}

// Delete removes the record for ssid.
func (s *Store) Delete(ssid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(ssid)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", ssid, ErrNotFound)
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	s.logger.Info("Deleted network configuration", zap.String("ssid", ssid))
	return nil
}

// ActivePath returns where the interface scripts expect the live record.
func ActivePath(systemDir, iface string) string {
	return filepath.Join(systemDir, "config-"+iface+fileExt)
}

// Activate copies the record for ssid to the interface's live config path.
func (s *Store) Activate(ssid, systemDir, iface string) (string, error) {
	src := s.Path(ssid)
	data, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", ssid, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}

	if err := os.MkdirAll(systemDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create system config directory: %w", err)
	}
	dst := ActivePath(systemDir, iface)
	if err := writeAtomic(dst, data, 0600); err != nil {
		return "", err
	}

	s.logger.Debug("Activated network configuration",
		zap.String("ssid", ssid),
		zap.String("dest", dst))
	return dst, nil
}

// MigrateLegacyNames renames record files written by older releases, which
// backslash-escaped SSIDs instead of query-escaping them. It returns the
// number of files renamed. Individual rename failures are logged and skipped.
func (s *Store) MigrateLegacyNames() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to list networks directory: %w", err)
	}

	renamed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) || !strings.Contains(name, `\`) {
			continue
		}

		ssid := strings.ReplaceAll(strings.TrimSuffix(name, fileExt), `\`, "")
		oldPath := filepath.Join(s.dir, name)
		newPath := s.Path(ssid)
		if err := os.Rename(oldPath, newPath); err != nil {
			s.logger.Warn("Failed to rename legacy network configuration",
				zap.String("from", oldPath),
				zap.String("to", newPath),
				zap.Error(err))
			continue
		}
		renamed++
	}
	return renamed, nil
}

func readRecord(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()
	return parseRecord(path, f)
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
