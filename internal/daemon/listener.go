package daemon

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"time"

	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/request"
)

// socketPollInterval is how often the listener checks that the socket file
// still exists. It is 10ms, not the watchers' 100ms cadence, matching the
// source's main loop poll.
const socketPollInterval = 10 * time.Millisecond

// RunListener binds a Unix domain socket at socketPath, removing any
// stale socket file first, and serves one goroutine per connection. The
// accept loop returns when ctx is cancelled or the socket file disappears
// from disk.
func RunListener(ctx context.Context, socketPath string, d *Daemon, log *logging.Logger) error {
	_ = os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}

	if log != nil {
		log.Info("Monitoring socket file at %s.", socketPath)
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ticker := time.NewTicker(socketPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-connCtx.Done():
				listener.Close()
				return
			case <-ticker.C:
				if _, err := os.Stat(socketPath); err != nil {
					cancel()
					listener.Close()
					return
				}
			}
		}
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if connCtx.Err() != nil {
				return nil
			}
			continue
		}
		go serveConn(conn, d, log)
	}
}

func serveConn(conn net.Conn, d *Daemon, log *logging.Logger) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return
	}

	if log != nil {
		log.Log("Received wallpaper request.")
	}

	handler := d.NewHandler()

	type result struct{ reply request.Reply }
	done := make(chan result, 1)
	go func() {
		done <- result{reply: handler.Handle(line)}
	}()

	select {
	case r := <-done:
		writeReply(conn, r.reply, log)
	case <-time.After(replyWaitTimeout):
		if log != nil {
			log.Error("timed out waiting for request handler, dropping connection")
		}
	}
}

func writeReply(conn net.Conn, reply request.Reply, log *logging.Logger) {
	data, err := json.Marshal(reply)
	if err != nil {
		if log != nil {
			log.Error("marshalling reply: %v", err)
		}
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil && log != nil {
		log.Error("writing reply to socket: %v", err)
	}
}
