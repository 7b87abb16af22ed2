package source

// FileID identifies a loaded source file within a FileSet.
type FileID uint32

// NoFileID marks the absence of a file reference.
const NoFileID FileID = 0

// IsValid reports whether the file ID refers to a loaded file.
func (id FileID) IsValid() bool { return id != NoFileID }
