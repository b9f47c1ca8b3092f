package term

import (
	"bytes"
	"errors"
	"testing"
)

func TestWrite(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if err := Write("84531"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if buf.String() != "84531" {
		t.Errorf("Write() = %q, want %q", buf.String(), "84531")
	}
}

func TestWrite_Empty(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if err := Write(""); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write(\"\") wrote %q", buf.String())
	}
}

type failingWriter struct{}

var errClosed = errors.New("closed")

func (failingWriter) Write(p []byte) (int, error) { return 0, errClosed }

func TestWrite_Error(t *testing.T) {
	defer Reset()
	SetOutput(failingWriter{})

	err := Write("x")
	if !errors.Is(err, errClosed) {
		t.Errorf("Write() error = %v, want wrapped errClosed", err)
	}
}

func TestError(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetErrOutput(&buf)

	Error("invalid length %q", "39")

	want := "Error: invalid length \"39\"\n"
	if buf.String() != want {
		t.Errorf("Error() = %q, want %q", buf.String(), want)
	}
}

func TestStdoutStderr(t *testing.T) {
	defer Reset()

	var out, errOut bytes.Buffer
	SetOutput(&out)
	SetErrOutput(&errOut)

	_, _ = Stdout().Write([]byte("out"))
	_, _ = Stderr().Write([]byte("err"))

	if out.String() != "out" {
		t.Errorf("Stdout() writer = %q, want %q", out.String(), "out")
	}
	if errOut.String() != "err" {
		t.Errorf("Stderr() writer = %q, want %q", errOut.String(), "err")
	}
}

func TestSetOutput_Nil(t *testing.T) {
	defer Reset()

	SetOutput(nil)
	SetErrOutput(nil)

	if Stdout() == nil || Stderr() == nil {
		t.Error("nil writer should fall back to os.Stdout/os.Stderr")
	}
}

func TestDiscard(t *testing.T) {
	defer Reset()
	Discard()

	if err := Write("test"); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	Error("test")
}
