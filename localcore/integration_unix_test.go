//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package localcore_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/rbmk-project/localsock/localcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixPathEndToEnd(t *testing.T) {
	endpoint := "unix:" + filepath.Join(t.TempDir(), "app.sock")
	nx := &localcore.Network{}

	listener, err := nx.Listen(context.Background(), endpoint)
	require.NoError(t, err)
	defer listener.Close()

	serverDone := make(chan error, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			serverDone <- err
			return
		}
		defer conn.Close()
		buf := make([]byte, 128)
		count, err := conn.Read(buf)
		if err != nil {
			serverDone <- err
			return
		}
		_, err = conn.Write(buf[:count])
		serverDone <- err
	}()

	conn, err := nx.DialContext(context.Background(), endpoint)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)

	buf := make([]byte, 128)
	count, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf[:count]))
	assert.NoError(t, <-serverDone)
}

func TestListenRemovesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stale.sock")

	// Simulate a process that died without unlinking its socket.
	stale, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	require.NoError(t, err)
	stale.SetUnlinkOnClose(false)
	require.NoError(t, stale.Close())
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Binding the same path must succeed thanks to stale cleanup.
	nx := &localcore.Network{}
	listener, err := nx.Listen(context.Background(), "unix:"+path)
	require.NoError(t, err)
	assert.NoError(t, listener.Close())
}
