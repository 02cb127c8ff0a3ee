package astock

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The store persists as four JSONL documents in a data directory, one entry
// per line, written as whole-document snapshots with write-then-rename so a
// crash never leaves a partially written document behind.
const (
	DocWatchlist = "watchlist.jsonl"
	DocPositions = "positions.jsonl"
	DocTags      = "tags.jsonl"
	DocTrades    = "trades.jsonl"
)

// Documents lists the persisted document filenames.
var Documents = []string{DocWatchlist, DocPositions, DocTags, DocTrades}

// DecodeStore reads the four documents from dir. Missing documents are
// treated as empty; the tag catalog falls back to the curated seed when its
// document is absent.
func DecodeStore(dir string) (*Store, error) {
	s := NewStore()

	if err := decodeLines(filepath.Join(dir, DocWatchlist), func(line []byte) error {
		var e WatchlistEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return err
		}
		s.watchlist = append(s.watchlist, e)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := decodeLines(filepath.Join(dir, DocPositions), func(line []byte) error {
		var e PositionEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return err
		}
		s.positions = append(s.positions, e)
		return nil
	}); err != nil {
		return nil, err
	}

	// an existing tags document replaces the built-in seed entirely
	tagsPath := filepath.Join(dir, DocTags)
	if _, err := os.Stat(tagsPath); err == nil {
		s.catalog = NewTagCatalog()
		if err := decodeLines(tagsPath, func(line []byte) error {
			var row CatalogRow
			if err := json.Unmarshal(line, &row); err != nil {
				return err
			}
			s.catalog.Upsert(row.Code, row.Name, row.Tags)
			return nil
		}); err != nil {
			return nil, err
		}
	}

	if err := decodeLines(filepath.Join(dir, DocTrades), func(line []byte) error {
		var r TradeRecord
		if err := json.Unmarshal(line, &r); err != nil {
			return err
		}
		s.trades.records = append(s.trades.records, r)
		return nil
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// EncodeStore writes all four documents to dir, each atomically.
func EncodeStore(dir string, s *Store) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create data dir %q: %w", dir, err)
	}
	if err := encodeLines(filepath.Join(dir, DocWatchlist), s.watchlist); err != nil {
		return err
	}
	if err := encodeLines(filepath.Join(dir, DocPositions), s.positions); err != nil {
		return err
	}
	if err := encodeLines(filepath.Join(dir, DocTags), s.catalog.Rows()); err != nil {
		return err
	}
	return encodeLines(filepath.Join(dir, DocTrades), s.trades.records)
}

// decodeLines reads a JSONL document line by line. A missing file is not an
// error; a malformed line is, with its location in the message.
func decodeLines(filename string, decode func(line []byte) error) error {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := decode(line); err != nil {
			return fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
	}
	return scanner.Err()
}

// encodeLines writes entries as a JSONL snapshot using write-then-rename.
func encodeLines[T any](filename string, entries []T) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temp file for %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, e := range entries {
		if err := encodeLine(w, e); err != nil {
			tmp.Close()
			return fmt.Errorf("cannot encode entry for %q: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

func encodeLine(w io.Writer, e any) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
