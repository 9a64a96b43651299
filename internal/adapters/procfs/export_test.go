package procfs

import "go.trai.ch/minish/internal/core/domain"

// ReadEntry reads one process directory with a fresh owner cache.
func ReadEntry(l *Lister, root, pid string) (domain.ProcessEntry, bool) {
	return l.readEntry(root, pid, newUserCache(l.accounts))
}
