package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SequentialRotator is an io.Writer that rolls the active file over to
// <base>.<n>.log once it would exceed maxSize, keeping at most maxBackups
// rolled files no older than maxAge days.
type SequentialRotator struct {
	filename   string
	maxSize    int64 // bytes
	maxAge     int   // days
	maxBackups int
	mu         sync.Mutex
	file       *os.File
	size       int64
}

func NewSequentialRotator(filename string, maxSizeMB, maxAge, maxBackups int) *SequentialRotator {
	return &SequentialRotator{
		filename:   filename,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxAge:     maxAge,
		maxBackups: maxBackups,
	}
}

// Write implements io.Writer
func (r *SequentialRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.openFile(); err != nil {
			return 0, err
		}
	}

	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Sync implements zapcore.WriteSyncer
func (r *SequentialRotator) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	return r.file.Sync()
}

func (r *SequentialRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *SequentialRotator) openFile() error {
	if err := os.MkdirAll(filepath.Dir(r.filename), 0755); err != nil {
		return err
	}

	r.size = 0
	if info, err := os.Stat(r.filename); err == nil {
		r.size = info.Size()
	}

	file, err := os.OpenFile(r.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	r.file = file
	return nil
}

func (r *SequentialRotator) rotate() error {
	if r.file != nil {
		if err := r.file.Close(); err != nil {
			return err
		}
		r.file = nil
	}

	backups := r.backups()
	next := 1
	if len(backups) > 0 {
		next = backups[0].seq + 1
	}

	base := strings.TrimSuffix(r.filename, ".log")
	if err := os.Rename(r.filename, fmt.Sprintf("%s.%d.log", base, next)); err != nil {
		return err
	}

	r.prune()
	return r.openFile()
}

type backupFile struct {
	path    string
	modTime time.Time
	seq     int
}

// backups lists rolled files, highest sequence number first.
func (r *SequentialRotator) backups() []backupFile {
	base := strings.TrimSuffix(filepath.Base(r.filename), ".log")
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(r.filename), base+".*.log"))
	if err != nil {
		return nil
	}

	files := make([]backupFile, 0, len(matches))
	for _, path := range matches {
		seq, ok := sequenceOf(filepath.Base(path))
		if !ok {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		files = append(files, backupFile{path: path, modTime: info.ModTime(), seq: seq})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].seq > files[j].seq
	})
	return files
}

// sequenceOf extracts n from "2025-07-01.<n>.log".
func sequenceOf(name string) (int, bool) {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return 0, false
	}
	seq, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0, false
	}
	return seq, true
}

func (r *SequentialRotator) prune() {
	files := r.backups()

	if r.maxBackups > 0 && len(files) > r.maxBackups {
		for _, f := range files[r.maxBackups:] {
			_ = os.Remove(f.path)
		}
		files = files[:r.maxBackups]
	}

	if r.maxAge > 0 {
		cutoff := time.Now().AddDate(0, 0, -r.maxAge)
		for _, f := range files {
			if f.modTime.Before(cutoff) {
				_ = os.Remove(f.path)
			}
		}
	}
}
