package telnet

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// pipeConn returns a Conn and the raw peer end of a net.Pipe. The peer writes
// bytes the Conn will read and reads bytes the Conn writes.
func pipeConn(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return NewConn(server, 0, 0), client
}

func readLineAsync(conn *Conn) chan struct {
	line string
	err  error
} {
	ch := make(chan struct {
		line string
		err  error
	}, 1)
	go func() {
		line, err := conn.ReadLine()
		ch <- struct {
			line string
			err  error
		}{line, err}
	}()
	return ch
}

func expectLine(t *testing.T, conn *Conn, peer net.Conn, input []byte, want string) {
	t.Helper()
	ch := readLineAsync(conn)
	_, err := peer.Write(input)
	require.NoError(t, err)

	select {
	case got := <-ch:
		require.NoError(t, got.err)
		assert.Equal(t, want, got.line)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadLine did not return")
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "lf terminated", input: []byte("look\n"), want: "look"},
		{name: "crlf terminated", input: []byte("look\r\n"), want: "look"},
		{name: "cr terminated", input: []byte("look\rx\n"), want: "look"},
		{name: "empty line", input: []byte("\r\n\n"), want: ""},
		{name: "tab preserved", input: []byte("take\tkey\n"), want: "take\tkey"},
		{name: "control chars filtered", input: []byte("lo\x07ok\x1b\n"), want: "look"},
		{
			name:  "iac negotiation filtered",
			input: []byte{IAC, DO, OptSuppressGoAhead, 'l', 'o', 'o', 'k', '\n'},
			want:  "look",
		},
		{
			name:  "iac mid line filtered",
			input: []byte{'l', 'o', IAC, WONT, 1, 'o', 'k', '\n'},
			want:  "look",
		},
		{
			name:  "subnegotiation filtered",
			input: append([]byte{IAC, SB, 24, 1, 2, IAC, SE}, []byte("look\n")...),
			want:  "look",
		},
		{
			name:  "escaped iac ignored",
			input: []byte{'a', IAC, IAC, 'b', '\n'},
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, peer := pipeConn(t)
			expectLine(t, conn, peer, tt.input, tt.want)
		})
	}
}

func TestReadLineSequential(t *testing.T) {
	conn, peer := pipeConn(t)
	expectLine(t, conn, peer, []byte("open drawer\r\ntake pen\r\n"), "open drawer")

	line, err := conn.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "take pen", line)
}

func TestReadLineEOF(t *testing.T) {
	conn, peer := pipeConn(t)
	ch := readLineAsync(conn)
	require.NoError(t, peer.Close())

	select {
	case got := <-ch:
		assert.Error(t, got.err)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadLine did not return")
	}
}

func TestWriteLine(t *testing.T) {
	conn, peer := pipeConn(t)

	done := make(chan error, 1)
	go func() { done <- conn.WriteLine("You open the Drawer.") }()

	buf := make([]byte, 64)
	n, err := peer.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "You open the Drawer.\r\n", string(buf[:n]))
	require.NoError(t, <-done)
}

func TestWritePrompt(t *testing.T) {
	conn, peer := pipeConn(t)

	done := make(chan error, 1)
	go func() { done <- conn.WritePrompt("> ") }()

	buf := make([]byte, 8)
	n, err := peer.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "> ", string(buf[:n]))
	require.NoError(t, <-done)
}

func TestNegotiate(t *testing.T) {
	conn, peer := pipeConn(t)

	done := make(chan error, 1)
	go func() { done <- conn.Negotiate() }()

	buf := make([]byte, 8)
	n, err := peer.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{IAC, WILL, OptSuppressGoAhead}, buf[:n])
	require.NoError(t, <-done)
}

func TestReadLineProperties(t *testing.T) {
	t.Run("printable text round-trips", rapid.MakeCheck(func(t *rapid.T) {
		text := rapid.StringMatching(`[ -~]*`).Draw(t, "text")

		client, server := net.Pipe()
		defer client.Close()
		defer server.Close()
		conn := NewConn(server, 0, 0)

		ch := readLineAsync(conn)
		_, err := client.Write(append([]byte(text), '\r', '\n'))
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}

		got := <-ch
		if got.err != nil {
			t.Fatalf("ReadLine failed: %v", got.err)
		}
		assert.Equal(t, text, got.line)
	}))
}
