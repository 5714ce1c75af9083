package domain

import "time"

// FileRecord represents one accepted file written to the bundle
type FileRecord struct {
	Path  string `json:"path"` // relative to the bundle root, forward slashes, "./" prefix
	Bytes int64  `json:"bytes"`
}

// SkippedFile records a candidate that could not be read
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Summary describes the outcome of one bundle run
type Summary struct {
	Root       string        `json:"root"`
	Output     string        `json:"output"`
	Discovered int           `json:"discovered"`
	Bundled    int           `json:"bundled"`
	Bytes      int64         `json:"bytes"`
	Records    []FileRecord  `json:"records,omitempty"`
	Skipped    []SkippedFile `json:"skipped,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// AddRecord records one file written to the bundle
func (s *Summary) AddRecord(path string, bytes int64) {
	s.Records = append(s.Records, FileRecord{Path: path, Bytes: bytes})
	s.Bundled++
	s.Bytes += bytes
}

// AddSkip records a skipped candidate with its cause
func (s *Summary) AddSkip(path string, err error) {
	s.Skipped = append(s.Skipped, SkippedFile{Path: path, Reason: err.Error()})
}
