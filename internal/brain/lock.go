package brain

import (
	"os"

	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

// fileLock is an exclusive advisory lock on a sidecar file. It serializes
// the read-modify-write cycles of concurrent mdb processes.
type fileLock struct {
	file *os.File
}

func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, mdberr.IO(err, "failed to open brain lock")
	}
	if err := lockFileExclusive(f); err != nil {
		f.Close()
		return nil, mdberr.IO(err, "failed to acquire brain lock")
	}
	return &fileLock{file: f}, nil
}

// Release unlocks and closes the lock file. The file itself is left behind.
func (l *fileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
