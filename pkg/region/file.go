package region

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const filePermission os.FileMode = 0o644

// Replacer replaces regions of files.
type Replacer struct {
	fs afero.Fs
}

func NewReplacer(fs afero.Fs) *Replacer {
	return &Replacer{fs: fs}
}

// FileResult is the result of replacing a region of a file.
// New is the content to be written, which always ends with a newline.
type FileResult struct {
	*Result

	Path    string
	Old     string
	New     string
	Changed bool
}

// Read reads a file and replaces its region in memory.
// The file isn't modified.
func (r *Replacer) Read(logE *logrus.Entry, path string, rg *Region, replacements func() []string) (*FileResult, error) {
	b, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", logerr.WithFields(err, logrus.Fields{
			"path": path,
		}))
	}
	result, err := Replace(string(b), rg, replacements)
	if err != nil {
		return nil, fmt.Errorf("replace a region: %w", logerr.WithFields(err, logrus.Fields{
			"path": path,
		}))
	}
	warnNotFound(logE, rg, result)
	fr := &FileResult{
		Result: result,
		Path:   path,
		Old:    string(b),
		New:    result.Text + "\n",
	}
	fr.Changed = fr.Old != fr.New
	return fr, nil
}

// Write writes the new content of a file.
// The content is written to a temporary file in the same directory and the temporary
// file is renamed to the target, so the target is never left half written.
func (r *Replacer) Write(fr *FileResult) error {
	mode := filePermission
	if fi, err := r.fs.Stat(fr.Path); err == nil {
		mode = fi.Mode().Perm()
	}
	tmp, err := afero.TempFile(r.fs, filepath.Dir(fr.Path), "."+filepath.Base(fr.Path)+".*")
	if err != nil {
		return fmt.Errorf("create a temporary file: %w", logerr.WithFields(err, logrus.Fields{
			"path": fr.Path,
		}))
	}
	tmpPath := tmp.Name()
	if err := writeTemp(r.fs, tmp, fr.New, mode); err != nil {
		_ = r.fs.Remove(tmpPath)
		return fmt.Errorf("write a temporary file: %w", logerr.WithFields(err, logrus.Fields{
			"path": fr.Path,
		}))
	}
	if err := r.fs.Rename(tmpPath, fr.Path); err != nil {
		_ = r.fs.Remove(tmpPath)
		return fmt.Errorf("rename a temporary file: %w", logerr.WithFields(err, logrus.Fields{
			"path": fr.Path,
		}))
	}
	return nil
}

func writeTemp(fs afero.Fs, tmp afero.File, content string, mode os.FileMode) error {
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err //nolint:wrapcheck
	}
	if err := tmp.Close(); err != nil {
		return err //nolint:wrapcheck
	}
	return fs.Chmod(tmp.Name(), mode) //nolint:wrapcheck
}

// ReplaceInFile replaces the first region of a file and writes the file.
// The file always ends with exactly one newline after the joined lines.
func (r *Replacer) ReplaceInFile(logE *logrus.Entry, path string, rg *Region, replacements func() []string) error {
	fr, err := r.Read(logE, path, rg, replacements)
	if err != nil {
		return err
	}
	return r.Write(fr)
}
