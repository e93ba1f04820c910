package player

import (
	"errors"
	"sync"
)

// State 播放状态，isLoading 与其正交
type State string

const (
	StateStopped State = "stopped"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// MediaEvent 前端媒体元素上报的事件
type MediaEvent string

const (
	EventLoadedMetadata MediaEvent = "loadedmetadata"
	EventCanPlay        MediaEvent = "canplay"
	EventWaiting        MediaEvent = "waiting"
	EventEnded          MediaEvent = "ended"
)

var ErrNoTrackBound = errors.New("재생할 음원이 선택되지 않았습니다")

// Snapshot 对外暴露的播放器状态
type Snapshot struct {
	TrackID   uint64  `json:"trackId"`
	State     State   `json:"state"`
	IsLoading bool    `json:"isLoading"`
	Position  float64 `json:"position"`
}

// Session 单个客户端会话的播放器。
// 不变式：一个会话同一时刻至多绑定一个音轨，且至多一个音轨处于 playing。
type Session struct {
	mu        sync.Mutex
	trackID   uint64
	state     State
	isLoading bool
	position  float64
	subs      map[chan Snapshot]struct{}
}

func newSession() *Session {
	return &Session{
		state: StateStopped,
		subs:  make(map[chan Snapshot]struct{}),
	}
}

// SetCurrentTrack 切换音轨：无论之前在播放什么，先停下，进入 stopped + loading。
func (s *Session) SetCurrentTrack(trackID uint64) {
	s.mu.Lock()
	s.trackID = trackID
	s.state = StateStopped
	s.isLoading = true
	s.position = 0
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
}

// Play 只有绑定了音轨才生效
func (s *Session) Play() error {
	s.mu.Lock()
	if s.trackID == 0 {
		s.mu.Unlock()
		return ErrNoTrackBound
	}
	s.state = StatePlaying
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
	return nil
}

func (s *Session) Pause() {
	s.mu.Lock()
	if s.state == StatePlaying {
		s.state = StatePaused
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
}

// Stop 停止并回卷到 0
func (s *Session) Stop() {
	s.mu.Lock()
	s.state = StateStopped
	s.position = 0
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
}

// Seek 进度是对媒体元素位置的直接读写，不做缓冲处理
func (s *Session) Seek(position float64) {
	s.mu.Lock()
	if position < 0 {
		position = 0
	}
	s.position = position
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
}

// OnMediaEvent 媒体元素事件驱动 isLoading 与 ended→stop
func (s *Session) OnMediaEvent(event MediaEvent) {
	s.mu.Lock()
	switch event {
	case EventLoadedMetadata, EventCanPlay:
		s.isLoading = false
	case EventWaiting:
		s.isLoading = true
	case EventEnded:
		s.state = StateStopped
		s.position = 0
		s.isLoading = false
	default:
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.broadcast(snap)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		TrackID:   s.trackID,
		State:     s.state,
		IsLoading: s.isLoading,
		Position:  s.position,
	}
}

// Subscribe 订阅状态变更，返回取消函数。慢消费者直接丢弃快照。
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcast(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Store 应用级播放器容器：应用启动时创建一次，依赖注入使用，不做全局单例。
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Session 按会话标识取播放器，不存在则创建
func (s *Store) Session(sessionID string) *Session {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok = s.sessions[sessionID]; ok {
		return session
	}
	session = newSession()
	s.sessions[sessionID] = session
	return session
}

// Remove 会话结束时释放
func (s *Store) Remove(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}
