package term

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestStream_Write(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	n, err := Stdout().Write([]byte("hello\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Write() = %d, want 6", n)
	}
	if buf.String() != "hello\n" {
		t.Errorf("Write() wrote %q, want %q", buf.String(), "hello\n")
	}
}

func TestStream_WriteError(t *testing.T) {
	defer Reset()

	SetErrOutput(failWriter{})

	_, err := Stderr().Write([]byte("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "write stderr") {
		t.Errorf("error = %q, want it to name the stream", err.Error())
	}
}

func TestStream_Names(t *testing.T) {
	if Stdout().Name() != "stdout" {
		t.Errorf("Stdout().Name() = %q", Stdout().Name())
	}
	if Stderr().Name() != "stderr" {
		t.Errorf("Stderr().Name() = %q", Stderr().Name())
	}
}

func TestStream_IsTerminal_Buffer(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if Stdout().IsTerminal() {
		t.Error("a bytes.Buffer should never be a terminal")
	}
}

func TestStream_IsTerminal_RegularFile(t *testing.T) {
	defer Reset()

	f, err := os.Create(t.TempDir() + "/out.log")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()
	SetOutput(f)

	if Stdout().IsTerminal() {
		t.Error("a regular file should not be a terminal")
	}
}

func TestForceTerminal(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	ForceTerminal(true)
	if !Stdout().IsTerminal() {
		t.Error("IsTerminal() = false after ForceTerminal(true)")
	}

	ForceTerminal(false)
	if Stdout().IsTerminal() {
		t.Error("IsTerminal() = true after ForceTerminal(false)")
	}
}

func TestForceTerminal_SurvivesSetOutput(t *testing.T) {
	defer Reset()

	ForceTerminal(true)
	SetOutput(&bytes.Buffer{})
	if !Stdout().IsTerminal() {
		t.Error("IsTerminal() = false after SetOutput following ForceTerminal(true)")
	}

	Reset()
	SetOutput(&bytes.Buffer{})
	if Stdout().IsTerminal() {
		t.Error("IsTerminal() = true after Reset")
	}
}

func TestStream_Flush(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	SetOutput(bw)

	_, _ = Stdout().Write([]byte("buffered"))
	if buf.Len() != 0 {
		t.Fatalf("expected data to stay buffered, got %q", buf.String())
	}

	if err := Stdout().Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.String() != "buffered" {
		t.Errorf("after Flush() = %q, want %q", buf.String(), "buffered")
	}

	// Flushing again writes nothing more.
	if err := Stdout().Flush(); err != nil {
		t.Fatalf("second Flush() error = %v", err)
	}
	if buf.String() != "buffered" {
		t.Errorf("after second Flush() = %q, want %q", buf.String(), "buffered")
	}
}

func TestStream_FlushUnbuffered(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if err := Stdout().Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
	if err := Stderr().Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
}

func TestPrintf(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Printf("count: %d", 42)

	if buf.String() != "count: 42" {
		t.Errorf("Printf() = %q, want %q", buf.String(), "count: 42")
	}
}

func TestPrintln(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Println("hello", "world")

	want := "hello world\n"
	if buf.String() != want {
		t.Errorf("Println() = %q, want %q", buf.String(), want)
	}
}

func TestSetOutput_Nil(t *testing.T) {
	defer Reset()

	// Setting nil should reset to the process files (not panic)
	SetOutput(nil)
	SetErrOutput(nil)

	if err := Stdout().Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
}

func TestDiscard(t *testing.T) {
	defer Reset()
	Discard()

	// Should not panic or error
	if _, err := Stdout().Write([]byte("test")); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	if _, err := Stderr().Write([]byte("test")); err != nil {
		t.Errorf("Write() error = %v", err)
	}
}

func TestStream_ConcurrentLinesDoNotInterleave(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	line := strings.Repeat("x", 64) + "\n"
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = Stdout().Write([]byte(line))
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Fatalf("got %d lines, want 400", len(lines))
	}
	for i, l := range lines {
		if l+"\n" != line {
			t.Fatalf("line %d garbled: %q", i, l)
		}
	}
}
