package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhdewitt/digit-matrix/internal/client"
)

func TestParseLine(t *testing.T) {
	e, ok, err := parseLine("  5 ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry{digit: 5}, e)

	e, ok, err = parseLine("3 red")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry{digit: 3, color: "red"}, e)

	_, ok, err = parseLine("")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = parseLine("x")
	assert.Error(t, err)
	_, _, err = parseLine("1 red extra")
	assert.Error(t, err)
}

func TestSend(t *testing.T) {
	var mu sync.Mutex
	var got []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.RawQuery)
		mu.Unlock()
		w.Write([]byte("OK"))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, time.Second)
	require.NoError(t, err)

	sideColors = true
	t.Cleanup(func() { sideColors = false })

	in := strings.NewReader("2\n\nbogus\n5 blue\n9\n")
	require.NoError(t, send(context.Background(), c, in, slog.New(slog.DiscardHandler)))

	assert.Equal(t, []string{
		"num=2&color=green",
		"num=5&color=blue",
		"num=9&color=white",
	}, got)
}
