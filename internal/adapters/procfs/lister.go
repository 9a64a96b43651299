// Package procfs lists live processes from the proc pseudo-filesystem.
package procfs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.ProcessLister = (*Lister)(nil)

// readDirBatch is the number of directory entries fetched per ReadDir call.
const readDirBatch = 128

// Lister implements ports.ProcessLister by scanning a proc root twice:
// once to size the PID column, once to collect entries.
type Lister struct {
	mu       sync.RWMutex
	root     string
	accounts ports.AccountResolver
}

// NewLister creates a Lister reading from root.
func NewLister(root string, accounts ports.AccountResolver) *Lister {
	return &Lister{root: root, accounts: accounts}
}

// SetRoot changes the directory scanned by subsequent calls to List.
func (l *Lister) SetRoot(root string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.root = root
}

// List scans the proc root. Processes that vanish mid-scan, whose owner cannot be
// resolved, or whose command line is empty are omitted without error.
func (l *Lister) List(ctx context.Context) (domain.ProcessListing, error) {
	l.mu.RLock()
	root := l.root
	l.mu.RUnlock()

	var listing domain.ProcessListing

	err := eachNumericEntry(ctx, root, func(name string) {
		listing.Width = max(listing.Width, len(name))
	})
	if err != nil {
		return domain.ProcessListing{}, err
	}

	users := newUserCache(l.accounts)
	err = eachNumericEntry(ctx, root, func(name string) {
		if entry, ok := l.readEntry(root, name, users); ok {
			listing.Entries = append(listing.Entries, entry)
		}
	})
	if err != nil {
		return domain.ProcessListing{}, err
	}

	return listing, nil
}

func (l *Lister) readEntry(root, pid string, users *userCache) (domain.ProcessEntry, bool) {
	dir := filepath.Join(root, pid)

	var st unix.Stat_t
	if err := unix.Stat(dir, &st); err != nil {
		return domain.ProcessEntry{}, false
	}

	owner, ok := users.lookup(st.Uid)
	if !ok {
		return domain.ProcessEntry{}, false
	}

	// #nosec G304 -- path is below the configured proc root
	cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline"))
	if err != nil {
		return domain.ProcessEntry{}, false
	}
	first, _, _ := bytes.Cut(cmdline, []byte{0})
	if len(first) == 0 {
		return domain.ProcessEntry{}, false
	}

	return domain.ProcessEntry{
		PID:     pid,
		User:    owner,
		Program: filepath.Base(string(first)),
	}, true
}

// eachNumericEntry streams the entries of root in batches and calls fn for every
// entry whose name is all digits. The directory is closed before returning.
func eachNumericEntry(ctx context.Context, root string, fn func(name string)) error {
	dir, err := os.Open(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProcScanFailed.Error()), "path", root)
	}
	defer func() { _ = dir.Close() }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := dir.ReadDir(readDirBatch)
		for _, entry := range entries {
			if domain.IsNumeric(entry.Name()) {
				fn(entry.Name())
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrProcScanFailed.Error()), "path", root)
		}
	}
}

// userCache memoizes uid lookups, including failures, for one listing.
type userCache struct {
	accounts ports.AccountResolver
	names    map[uint32]string
	missing  map[uint32]struct{}
}

func newUserCache(accounts ports.AccountResolver) *userCache {
	return &userCache{
		accounts: accounts,
		names:    make(map[uint32]string),
		missing:  make(map[uint32]struct{}),
	}
}

func (c *userCache) lookup(uid uint32) (string, bool) {
	if name, ok := c.names[uid]; ok {
		return name, true
	}
	if _, ok := c.missing[uid]; ok {
		return "", false
	}

	name, err := c.accounts.Username(uid)
	if err != nil {
		c.missing[uid] = struct{}{}
		return "", false
	}
	c.names[uid] = name
	return name, true
}
