package netx

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/valyala/bytebufferpool"
)

func TestReadHeaderBlock(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	go func() {
		client.Write([]byte("GET /foo HTTP/1.1\r\nHost: example\r\n\r\n"))
	}()

	got, err := ReadHeaderBlock(context.Background(), server, 5*time.Second, new(bytebufferpool.ByteBuffer))
	if err != nil {
		t.Fatalf("ReadHeaderBlock: %v", err)
	}
	want := "GET /foo HTTP/1.1\r\nHost: example\r\n\r\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadHeaderBlockCancelled(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadHeaderBlock(ctx, server, 5*time.Second, new(bytebufferpool.ByteBuffer))
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
}
