//go:build windows

package open

import (
	"os"

	winacl "github.com/hectane/go-acl"
)

// NewSafeFile opens filepath read-write with owner-only permission,
// discarding whatever the file held before.
//
// The profile and session stores are written through this, so a bearer
// token never sits in a file other accounts can read.
func NewSafeFile(filepath string) (*os.File, error) {
	// Windows cannot attach an ACL at creation time. Open first, restrict
	// the ACL, and only then truncate, so nothing is written to a file
	// that is still readable by others.
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}

	if err := winacl.Chmod(filepath, os.FileMode(0600)); err != nil {
		return nil, err
	}

	if err := f.Truncate(0); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	return f, nil
}
