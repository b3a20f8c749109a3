// Package patch runs the one-shot binary patch pipeline: decode a hex
// payload, load the source file into memory, overwrite bytes at a fixed
// offset, write the result to a new destination file, and clone the source
// file's access/modification timestamps onto it.
//
// The pipeline is a pure function of its inputs plus filesystem side
// effects; nothing is shared between runs. Sensitive inputs (the hex digits
// and the decoded payload) are zeroed before Run returns on every path past
// decoding. A failed run does not roll back: a destination written before a
// timestamp failure stays on disk.
package patch

import (
	"fmt"
	"io"
	"os"

	"github.com/hexpatch/hexedit/internal/hexstr"
	engine "github.com/hexpatch/hexedit/internal/patch"
	"github.com/hexpatch/hexedit/internal/secure"
	"github.com/hexpatch/hexedit/internal/stamp"
	"github.com/hexpatch/hexedit/internal/writer"
)

// MaxHexDigits caps the hex payload at 1000 digits (500 bytes).
const MaxHexDigits = 1000

// Request describes one patch run.
type Request struct {
	// Offset is the byte position where the payload lands. Offsets outside
	// the source file's bounds degrade to a no-op copy, not an error.
	Offset int64

	// Hex holds the payload as hex digits: even count, no separators.
	// Run zeroes this slice before returning.
	Hex []byte

	// Source and Dest are the input and output file paths. Source is never
	// modified; Dest is created or truncated.
	Source string
	Dest   string
}

// Result reports a completed run.
type Result struct {
	Source  string
	Dest    string
	Size    int64 // bytes written, always the source file size
	Patched int   // payload bytes actually applied
}

// Run executes the pipeline. The first failing step aborts the run; see the
// package errors for the failure kinds. Decode failures surface the hexstr
// sentinels and happen before any file is touched.
func Run(req *Request) (*Result, error) {
	defer secure.Zero(req.Hex)

	if len(req.Hex) > MaxHexDigits {
		return nil, fmt.Errorf("%w: %d digits, max %d", ErrPayloadTooLarge, len(req.Hex), MaxHexDigits)
	}
	decoded, err := hexstr.Decode(req.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	payload := secure.NewBuffer(decoded)
	defer payload.Release()

	fi, err := os.Stat(req.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceAccess, err)
	}
	times := stamp.FromFileInfo(fi)

	data, err := loadSource(req.Source, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceAccess, err)
	}

	patched := engine.Apply(data, req.Offset, payload.Bytes())

	// The digits and decoded payload are spent; scrub them before the
	// buffer heads to the filesystem layer.
	payload.Release()
	secure.Zero(req.Hex)

	w := &writer.FileWriter{Path: req.Dest}
	if err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDestinationWrite, err)
	}
	if err := times.Apply(req.Dest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimestampApply, err)
	}

	return &Result{
		Source:  req.Source,
		Dest:    req.Dest,
		Size:    fi.Size(),
		Patched: patched,
	}, nil
}

// loadSource reads exactly size bytes from path. The buffer is sized from
// the stat result; a file that shrank in between surfaces as a short read.
func loadSource(path string, size int64) ([]byte, error) {
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("file too large to load (%d bytes)", size)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
