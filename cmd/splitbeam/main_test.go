package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitbeam/internal/config"
	"github.com/mmynk/splitbeam/internal/lastseen"
	"github.com/mmynk/splitbeam/internal/provider"
	"github.com/mmynk/splitbeam/internal/state"
	"github.com/mmynk/splitbeam/internal/storage/memory"
	"github.com/mmynk/splitbeam/internal/views"
)

func setupTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	kv := memory.New()
	store := state.Open(context.Background(), kv)
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	return &app{
		out:      &out,
		store:    store,
		provider: provider.New(store),
		lastSeen: lastseen.New(kv, time.Now),
		cfg:      &config.Config{MetricsAddr: "127.0.0.1:0"},
	}, &out
}

func TestRun_ReadCommands(t *testing.T) {
	tests := []struct {
		cmd  string
		args []string
		want []string
	}{
		{"circles", nil, []string{"Tracking 2 circles", "circle_1"}},
		{"circle", []string{"circle_1"}, []string{"Members:", "Expenses:"}},
		{"friends", nil, []string{"friends syncing with SplitBeam", "jules@studio.dev"}},
		{"activity", nil, []string{"events across"}},
		{"activity", []string{"-scope", "friend"}, []string{"events across"}},
		{"help", nil, []string{"Usage: splitbeam"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			a, out := setupTestApp(t)
			require.NoError(t, a.run(context.Background(), tt.cmd, tt.args))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		cmd  string
		args []string
	}{
		{"circle", nil},
		{"circle", []string{"circle_404"}},
		{"activity", []string{"-scope", "global"}},
		{"invite", nil},
		{"invite", []string{""}},
		{"settle", []string{"circle_1", "user_1", "friend_1"}},
		{"settle", []string{"circle_1", "user_1", "friend_1", "lots"}},
		{"settle", []string{"circle_404", "user_1", "friend_1", "5"}},
		{"bogus", nil},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			a, _ := setupTestApp(t)
			assert.Error(t, a.run(context.Background(), tt.cmd, tt.args))
		})
	}
}

func TestRun_WriteCommands(t *testing.T) {
	ctx := context.Background()
	a, out := setupTestApp(t)

	require.NoError(t, a.run(ctx, "invite", []string{"new@example.com"}))
	assert.Contains(t, out.String(), "Invited new@example.com")
	assert.Len(t, a.store.Snapshot().Friends, len(state.Default().Friends)+1)

	require.NoError(t, a.run(ctx, "settle", []string{"circle_1", "friend_1", "user_1", "12.5"}))
	assert.Contains(t, out.String(), "Recorded")
	assert.Len(t, a.store.Snapshot().Settlements, len(state.Default().Settlements)+1)

	require.NoError(t, a.run(ctx, "seen", nil))
	assert.False(t, a.lastSeen.Get(ctx).IsZero())

	require.NoError(t, a.run(ctx, "reset", nil))
	assert.Len(t, a.store.Snapshot().Friends, len(state.Default().Friends))
}

func TestRun_CircleShowsUpcomingRuns(t *testing.T) {
	a, out := setupTestApp(t)

	require.NoError(t, a.run(context.Background(), "circle", []string{"circle_2"}))
	assert.Contains(t, out.String(), "Loft rent")
	assert.Contains(t, out.String(), "next May 1, 2024")
	assert.Contains(t, out.String(), "then Jun 1, 2024, Jul 1, 2024")
}

func TestRun_ActivityUnseenMarker(t *testing.T) {
	ctx := context.Background()
	a, out := setupTestApp(t)

	require.NoError(t, a.run(ctx, "activity", nil))
	assert.Contains(t, out.String(), "[new] ")

	require.NoError(t, a.run(ctx, "seen", nil))
	out.Reset()
	require.NoError(t, a.run(ctx, "activity", nil))
	assert.NotContains(t, out.String(), "[new] ")

	require.NoError(t, a.run(ctx, "settle", []string{"circle_1", "friend_1", "user_1", "5"}))
	out.Reset()
	require.NoError(t, a.run(ctx, "activity", nil))
	assert.Contains(t, out.String(), "[new] ")
}

func TestHandler_Dashboard(t *testing.T) {
	ctx := context.Background()
	a, _ := setupTestApp(t)
	live := views.NewLive(a.store, time.Now)
	t.Cleanup(live.Close)
	srv := httptest.NewServer(a.handler(live))
	t.Cleanup(srv.Close)

	get := func() (views.Dashboard, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + "/dashboard")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var d views.Dashboard
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
		return d, resp.Header.Get("X-Dashboard-Version")
	}

	d, version := get()
	assert.Equal(t, "1", version)
	assert.Len(t, d.Circles, len(state.Default().Circles))
	assert.Len(t, d.Friends, len(state.Default().Friends))

	require.NoError(t, a.run(ctx, "invite", []string{"dash@example.com"}))
	d, version = get()
	assert.Equal(t, "2", version)
	assert.Len(t, d.Friends, len(state.Default().Friends)+1)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExecute_ClosesStorageOnFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("SPLITBEAM_STORAGE", "redis")
	t.Setenv("SPLITBEAM_REDIS_ADDR", mr.Addr())
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	assert.Equal(t, 1, execute([]string{"circle", "circle_missing"}, &out))
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, execute([]string{"circles"}, &out))
	assert.Contains(t, out.String(), "Tracking 2 circles")
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
}
