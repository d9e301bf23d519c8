package server

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGracefulShutdown(t *testing.T) {
	// Keep SIGTERM handled for the whole test so the signal can never
	// fall through to the default action and kill the process.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	defer signal.Stop(sigs)

	srv := &http.Server{Addr: ":0"}
	done := make(chan bool, 1)
	go GracefulShutdown(srv, zap.NewNop(), done)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}
