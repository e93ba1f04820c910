package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayWithoutTrack(t *testing.T) {
	s := NewStore().Session("sess-1")

	err := s.Play()
	assert.ErrorIs(t, err, ErrNoTrackBound)
	assert.Equal(t, StateStopped, s.Snapshot().State)
}

func TestSetCurrentTrackResetsState(t *testing.T) {
	s := NewStore().Session("sess-1")

	s.SetCurrentTrack(7)
	require.NoError(t, s.Play())
	s.Seek(42.5)

	// 切歌：正在播放的也必须先停
	s.SetCurrentTrack(8)

	snap := s.Snapshot()
	assert.Equal(t, uint64(8), snap.TrackID)
	assert.Equal(t, StateStopped, snap.State)
	assert.True(t, snap.IsLoading)
	assert.Equal(t, 0.0, snap.Position)
}

func TestAtMostOnePlaying(t *testing.T) {
	s := NewStore().Session("sess-1")

	// 任意 setCurrentTrack 序列之后，播放中的音轨只可能是当前绑定的那一个
	for _, id := range []uint64{1, 2, 3, 2, 5} {
		s.SetCurrentTrack(id)
		require.NoError(t, s.Play())
	}

	snap := s.Snapshot()
	assert.Equal(t, uint64(5), snap.TrackID)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestPauseAndStop(t *testing.T) {
	s := NewStore().Session("sess-1")
	s.SetCurrentTrack(3)
	require.NoError(t, s.Play())

	s.Pause()
	assert.Equal(t, StatePaused, s.Snapshot().State)

	// 暂停态再 Pause 不改变状态
	s.Pause()
	assert.Equal(t, StatePaused, s.Snapshot().State)

	s.Seek(10)
	s.Stop()
	snap := s.Snapshot()
	assert.Equal(t, StateStopped, snap.State)
	assert.Equal(t, 0.0, snap.Position)
}

func TestMediaEvents(t *testing.T) {
	s := NewStore().Session("sess-1")
	s.SetCurrentTrack(3)
	assert.True(t, s.Snapshot().IsLoading)

	s.OnMediaEvent(EventLoadedMetadata)
	assert.False(t, s.Snapshot().IsLoading)

	require.NoError(t, s.Play())
	s.OnMediaEvent(EventWaiting)
	assert.True(t, s.Snapshot().IsLoading)

	s.OnMediaEvent(EventCanPlay)
	assert.False(t, s.Snapshot().IsLoading)

	// ended 等价于 stop
	s.Seek(180)
	s.OnMediaEvent(EventEnded)
	snap := s.Snapshot()
	assert.Equal(t, StateStopped, snap.State)
	assert.Equal(t, 0.0, snap.Position)
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	s := NewStore().Session("sess-1")
	ch, cancel := s.Subscribe()
	defer cancel()

	s.SetCurrentTrack(9)

	snap := <-ch
	assert.Equal(t, uint64(9), snap.TrackID)
	assert.Equal(t, StateStopped, snap.State)
}

func TestStoreSessionIsolation(t *testing.T) {
	store := NewStore()
	a := store.Session("a")
	b := store.Session("b")

	a.SetCurrentTrack(1)
	require.NoError(t, a.Play())

	assert.Equal(t, StatePlaying, a.Snapshot().State)
	assert.Equal(t, StateStopped, b.Snapshot().State)

	// 同一标识返回同一会话
	assert.Same(t, a, store.Session("a"))

	store.Remove("a")
	assert.NotSame(t, a, store.Session("a"))
}
