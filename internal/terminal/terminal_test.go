package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTerminalPlainWriter(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal() = true for a plain buffer, want false")
	}
}

func TestIsTerminalPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(w) {
		t.Error("IsTerminal() = true for a pipe, want false")
	}
}

func TestColorWriterPassesThrough(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	cw := ColorWriter(w)
	if cw == nil {
		t.Fatal("ColorWriter() returned nil")
	}

	done := make(chan string, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := r.Read(buf)
		done <- string(buf[:n])
	}()

	if _, err := cw.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if got := <-done; got != "hello" {
		t.Errorf("Read back %q, want %q", got, "hello")
	}
}
