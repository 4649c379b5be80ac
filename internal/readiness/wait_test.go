package readiness

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_ReadyAfterRetries(t *testing.T) {
	calls := 0
	probe := func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	err := Wait(context.Background(), Config{Name: "memcached", Interval: 5 * time.Millisecond, Timeout: time.Second}, probe)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWait_Timeout(t *testing.T) {
	probe := func(ctx context.Context) error { return errors.New("connection refused") }

	err := Wait(context.Background(), Config{Name: "memcached", Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond}, probe)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestWait_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	probe := func(ctx context.Context) error {
		cancel()
		return errors.New("connection refused")
	}

	err := Wait(ctx, Config{Name: "memcached", Interval: 5 * time.Millisecond}, probe)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestWait_InvalidInterval(t *testing.T) {
	err := Wait(context.Background(), Config{Name: "memcached"}, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrIntervalNotPositive)
}

// serveVersion answers memcached's version command on a local listener.
func serveVersion(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				r := bufio.NewReader(c)
				for {
					line, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if strings.HasPrefix(line, "version") {
						if _, err := c.Write([]byte("VERSION 1.6.21\r\n")); err != nil {
							return
						}
					}
				}
			}(conn)
		}
	}()
	return ln.Addr().String()
}

func TestMemcachedProbe(t *testing.T) {
	addr := serveVersion(t)

	probe := MemcachedProbe(addr, time.Second)
	assert.NoError(t, probe(context.Background()))
}

func TestMemcachedProbe_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	probe := MemcachedProbe(addr, 100*time.Millisecond)
	assert.Error(t, probe(context.Background()))
}
