package chainstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/sonic"
	"github.com/goware/superr"
)

var (
	ErrStorageIO = fmt.Errorf("chainstore: storage i/o failure")
)

// archivedBlock is the on-disk representation of one archived block. The
// original chain-specific payload is flattened to its chain kind, number,
// and hash rather than round-tripped byte-for-byte, since the archive exists
// for operator inspection, not for replay.
type archivedBlock struct {
	ChainKind chainmodel.ChainKind `json:"chain_kind"`
	Number    uint64               `json:"number"`
	Hash      string               `json:"hash"`
}

// FileStore is the reference filesystem-backed BlockStorage, matching the
// persisted layout of §6:
//
//	data/{slug}_last_block.txt
//	data/{slug}_blocks_{unix_seconds}.json
//	data/{slug}_missed_blocks.txt
type FileStore struct {
	dir string
	mu  sync.Mutex

	// nowUnix returns the current unix timestamp; overridable in tests so
	// archive filenames are deterministic.
	nowUnix func() int64
}

func NewFileStore(dir string, nowUnix func() int64) *FileStore {
	return &FileStore{dir: dir, nowUnix: nowUnix}
}

func (s *FileStore) lastBlockPath(slug string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_last_block.txt", slug))
}

func (s *FileStore) missedBlocksPath(slug string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_missed_blocks.txt", slug))
}

func (s *FileStore) blocksPath(slug string, unixSeconds int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_blocks_%d.json", slug, unixSeconds))
}

func (s *FileStore) GetLastProcessed(ctx context.Context, slug string) (uint64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.lastBlockPath(slug))
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, superr.New(ErrStorageIO, err)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0, false, superr.New(ErrStorageIO, err)
	}
	return n, true, nil
}

func (s *FileStore) SaveLastProcessed(ctx context.Context, slug string, n uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	if err := os.WriteFile(s.lastBlockPath(slug), []byte(strconv.FormatUint(n, 10)), 0o644); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	return nil
}

func (s *FileStore) SaveBlocks(ctx context.Context, slug string, blocks []chainmodel.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	archived := make([]archivedBlock, len(blocks))
	for i, b := range blocks {
		archived[i] = archivedBlock{ChainKind: b.ChainKind(), Number: b.Number(), Hash: b.Hash()}
	}

	data, err := sonic.Config.Marshal(archived)
	if err != nil {
		return superr.New(ErrStorageIO, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	path := s.blocksPath(slug, s.nowUnix())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	return nil
}

func (s *FileStore) DeleteBlocks(ctx context.Context, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pattern := filepath.Join(s.dir, fmt.Sprintf("%s_blocks_*.json", slug))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return superr.New(ErrStorageIO, err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return superr.New(ErrStorageIO, err)
		}
	}
	return nil
}

func (s *FileStore) SaveMissedBlocks(ctx context.Context, slug string, numbers []uint64) error {
	if len(numbers) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	f, err := os.OpenFile(s.missedBlocksPath(slug), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return superr.New(ErrStorageIO, err)
	}
	defer f.Close()

	var sb strings.Builder
	for _, n := range numbers {
		sb.WriteString(strconv.FormatUint(n, 10))
		sb.WriteByte('\n')
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		return superr.New(ErrStorageIO, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
