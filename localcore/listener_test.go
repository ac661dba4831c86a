// SPDX-License-Identifier: GPL-3.0-or-later

package localcore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/rbmk-project/localsock/localaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockListener is a [net.Listener] that records nothing and
// implements just enough for the tests.
type mockListener struct {
	net.Listener
}

func TestNetwork_Listen(t *testing.T) {
	t.Run("resolution failure", func(t *testing.T) {
		nx := &Network{}
		listener, err := nx.Listen(context.Background(), "not-a-uri")
		assert.ErrorIs(t, err, localaddr.ErrAddressParse)
		assert.Nil(t, listener)
	})

	t.Run("unix path listen", func(t *testing.T) {
		expected := &mockListener{}
		var gotNetwork, gotAddress string
		nx := &Network{
			ListenFunc: func(network, address string) (net.Listener, error) {
				gotNetwork, gotAddress = network, address
				return expected, nil
			},
		}
		listener, err := nx.Listen(context.Background(), "unix:/tmp/foo.sock")
		assert.NoError(t, err)
		assert.Equal(t, expected, listener)
		assert.Equal(t, "unix", gotNetwork)
		assert.Equal(t, "/tmp/foo.sock", gotAddress)
	})

	t.Run("abstract listen uses the @ spelling", func(t *testing.T) {
		expected := &mockListener{}
		var gotAddress string
		nx := &Network{
			ListenFunc: func(network, address string) (net.Listener, error) {
				gotAddress = address
				return expected, nil
			},
		}
		listener, err := nx.Listen(context.Background(), "unix-abstract:my-sock")
		assert.NoError(t, err)
		assert.Equal(t, expected, listener)
		assert.Equal(t, "@my-sock", gotAddress)
	})

	t.Run("vsock listen", func(t *testing.T) {
		expected := &mockListener{}
		var gotCID, gotPort uint32
		nx := &Network{
			ListenVsockFunc: func(cid, port uint32) (net.Listener, error) {
				gotCID, gotPort = cid, port
				return expected, nil
			},
		}
		listener, err := nx.Listen(context.Background(), "vsock:3:5000")
		assert.NoError(t, err)
		assert.Equal(t, expected, listener)
		assert.Equal(t, uint32(3), gotCID)
		assert.Equal(t, uint32(5000), gotPort)
	})

	t.Run("listen failure with logging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelInfo,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))

		expectedErr := errors.New("mocked listen error")
		nx := &Network{
			Logger: logger,
			ListenFunc: func(network, address string) (net.Listener, error) {
				return nil, expectedErr
			},
		}
		listener, err := nx.Listen(context.Background(), "unix:/tmp/foo.sock")
		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, listener)

		logs := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, logs, 2)

		var startLog map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(logs[0]), &startLog))
		assert.Equal(t, "listenStart", startLog["msg"])
		assert.Equal(t, "unix:/tmp/foo.sock", startLog["endpoint"])
		assert.Equal(t, "unix", startLog["family"])

		var doneLog map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(logs[1]), &doneLog))
		assert.Equal(t, "listenDone", doneLog["msg"])
		assert.Equal(t, expectedErr.Error(), doneLog["err"])
		assert.Equal(t, "EGENERIC", doneLog["errClass"])
	})
}

func TestNetwork_listenAddr(t *testing.T) {
	t.Run("unsupported family", func(t *testing.T) {
		nx := &Network{}
		listener, err := nx.listenAddr(localaddr.Addr{})
		assert.Error(t, err)
		assert.Nil(t, listener)
	})
}
