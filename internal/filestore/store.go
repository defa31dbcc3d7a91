package filestore

import (
	"os"

	"github.com/sajee05/effortless-time-tracker/internal/logging"
)

// Store writes and reads compressed payloads with crash-safe semantics.
// A half-written file never replaces an existing one.
type Store struct {
	compressor Compressor
	logger     logging.Logger
}

// NewStore creates a file store around the given compressor.
func NewStore(compressor Compressor, logger logging.Logger) *Store {
	return &Store{
		compressor: compressor,
		logger:     logger,
	}
}

// SaveCompressed compresses data and writes it to fileName atomically.
func (s *Store) SaveCompressed(fileName string, data []byte) error {
	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return err
	}

	if err := SaveAtomic(fileName, compressed); err != nil {
		return err
	}

	s.logger.Debugf("wrote %s (%d -> %d bytes)", fileName, len(data), len(compressed))
	return nil
}

// LoadCompressed reads and decompresses fileName. A missing file yields
// (nil, nil) so callers can treat it as an empty payload.
func (s *Store) LoadCompressed(fileName string) ([]byte, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	return s.compressor.Decompress(data)
}

// Close releases the compressor.
func (s *Store) Close() {
	s.compressor.Close()
}

// SaveAtomic writes data to fileName through a temp file, fsync and rename.
func SaveAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
