package submit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/raphi011/stepper/internal/storage"
)

// ErrClipboardUnavailable is returned when no clipboard utility exists.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Target receives an encoded record.
type Target interface {
	Deliver(ctx context.Context, data []byte) error
	String() string
}

// WriterTarget writes the record to W.
type WriterTarget struct {
	W    io.Writer
	Name string // shown in logs, e.g. "stdout"
}

func (t WriterTarget) Deliver(_ context.Context, data []byte) error {
	if _, err := t.W.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", t, err)
	}
	return nil
}

func (t WriterTarget) String() string {
	if t.Name == "" {
		return "writer"
	}
	return t.Name
}

// BufferTarget keeps the latest record in Buf. Each delivery replaces
// the previous contents, so a retried submission leaves one record.
type BufferTarget struct {
	Buf  *bytes.Buffer
	Name string // shown in logs, e.g. "stdout"
}

func (t BufferTarget) Deliver(_ context.Context, data []byte) error {
	t.Buf.Reset()
	t.Buf.Write(data)
	return nil
}

func (t BufferTarget) String() string {
	if t.Name == "" {
		return "buffer"
	}
	return t.Name
}

// FileTarget atomically replaces Path with the record.
type FileTarget struct {
	Path string
	Perm os.FileMode // 0 means 0600
}

func (t FileTarget) Deliver(_ context.Context, data []byte) error {
	perm := t.Perm
	if perm == 0 {
		perm = 0o600
	}
	if err := storage.WriteAtomic(t.Path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	return nil
}

func (t FileTarget) String() string {
	return t.Path
}

// ClipboardTarget copies the record to the system clipboard.
type ClipboardTarget struct{}

func (ClipboardTarget) Deliver(_ context.Context, data []byte) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (ClipboardTarget) String() string {
	return "clipboard"
}
