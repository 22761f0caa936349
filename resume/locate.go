package resume

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	candidateBases = []string{"resume", "Resume", "RESUME", "cv", "CV"}
	candidateExts  = []string{".pdf", ".html", ".txt", ".md"}
)

// Candidates returns the resume file names Locate looks for, in order.
func Candidates() []string {
	names := make([]string, 0, len(candidateBases)*len(candidateExts))
	for _, base := range candidateBases {
		for _, ext := range candidateExts {
			names = append(names, base+ext)
		}
	}
	return names
}

// Locate returns the first candidate resume file that exists in dir.
func Locate(dir string) (string, error) {
	names := Candidates()
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %d candidates)", ErrNoResumeFound, dir, len(names))
}
