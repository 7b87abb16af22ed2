package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every loaded source file for one compiler invocation.
type FileSet struct {
	files   []*File
	index   map[string]FileID
	baseDir string
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 1), // index 0 reserved for NoFileID
		index: make(map[string]FileID),
	}
}

// SetBaseDir overrides the directory relative paths are computed against.
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the configured base directory, defaulting to the cwd.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// Add registers already-read content under path and returns its FileID.
func (fs *FileSet) Add(path string, content []byte) FileID {
	id, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: file set overflow: %w", err))
	}
	fileID := FileID(id)
	clean := filepath.ToSlash(filepath.Clean(path))
	fs.files = append(fs.files, NewFile(fileID, clean, content))
	fs.index[clean] = fileID
	return fileID
}

// Load reads path from disk and registers it.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI caller
	if err != nil {
		return NoFileID, err
	}
	return fs.Add(path, content), nil
}

// AddVirtual registers in-memory content (tests, stdin) under name.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content)
}

// Get returns the file for id, or nil if id is out of range.
func (fs *FileSet) Get(id FileID) *File {
	if !id.IsValid() || int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}
