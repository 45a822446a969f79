package domain

import "fmt"

// PathNotFoundError reports a champions root that does not exist or is not a
// directory. It is the only fatal error of a run.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("champions root %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("champions root %s: not a directory", e.Path)
}

func (e *PathNotFoundError) Unwrap() error { return e.Err }

// MalformedJSONError reports an item set file that could not be decoded.
// The file is skipped; the run continues.
type MalformedJSONError struct {
	Path string
	Err  error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// BackupError reports a failed .bak write. The modified file is not written,
// so the on-disk original stays intact.
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("writing backup for %s: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }

// WriteError reports a failed write of a modified item set file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
