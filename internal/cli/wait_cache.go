package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-list-service/internal/config"
	"todo-list-service/internal/readiness"
)

func newWaitCacheCommand() *cobra.Command {
	var (
		addr     string
		interval time.Duration
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait-cache",
		Short: "Block until memcached answers",
		Long: `wait-cache polls memcached until it answers the version command.
Without --addr, the address comes from MEMCACHED_IP and MEMCACHED_PORT.
A zero --timeout waits forever.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				addr = cfg.Memcached.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return waitCache(ctx, addr, interval, timeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "memcached host:port")
	cmd.Flags().DurationVar(&interval, "interval", readiness.DefaultInterval, "delay between attempts")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long (0 waits forever)")

	return cmd
}

func waitCache(ctx context.Context, addr string, interval, timeout time.Duration) error {
	probeTimeout := interval
	if probeTimeout > 5*time.Second {
		probeTimeout = 5 * time.Second
	}
	return readiness.Wait(ctx, readiness.Config{
		Name:     "memcached " + addr,
		Interval: interval,
		Timeout:  timeout,
	}, readiness.MemcachedProbe(addr, probeTimeout))
}
