package dump

import (
	"errors"
	"io"
	"os"
)

// IsDirEmpty reports whether dir has no entries. It fails if dir does not
// exist or is not a directory.
func IsDirEmpty(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, &os.PathError{Op: "readdir", Path: dir, Err: errors.New("not a directory")}
	}

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
