package daemon

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kestrelwm/rpaperd/internal/request"
)

func writeConfig(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFailsOnUnreadableConfig(t *testing.T) {
	_, err := New(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.json")}, nil)
	if err == nil {
		t.Fatal("expected error when config file is missing at startup")
	}
}

func TestNewAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	writeConfig(t, configPath)

	d, err := New(Options{ConfigPath: configPath, SocketPath: filepath.Join(dir, "rpaperd.sock")}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if d.Snapshot() == nil {
		t.Fatal("expected a non-nil snapshot")
	}
}

func TestListenerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	writeConfig(t, configPath)
	socketPath := filepath.Join(dir, "rpaperd.sock")

	d, err := New(Options{ConfigPath: configPath, SocketPath: socketPath}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenerErr := make(chan error, 1)
	go func() { listenerErr <- RunListener(ctx, socketPath, d, nil) }()

	var conn net.Conn
	for i := 0; i < 50; i++ {
		conn, err = net.Dial("unix", socketPath)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if conn == nil {
		t.Fatalf("failed to connect to socket: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(`{"get_config":true}` + "\n")); err != nil {
		t.Fatalf("writing request: %v", err)
	}

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatalf("reading reply: %v", err)
	}

	var reply request.Reply
	if err := json.Unmarshal([]byte(line), &reply); err != nil {
		t.Fatalf("unmarshalling reply %q: %v", line, err)
	}
	if reply.Message != "ok" {
		t.Fatalf("expected ok message, got %+v", reply)
	}
}

func TestEnsureSingleInstanceDoesNotFlagCurrentProcess(t *testing.T) {
	if err := EnsureSingleInstance(); err != nil {
		t.Fatalf("expected no running instance to be detected for an unused name, got %v", err)
	}
}
