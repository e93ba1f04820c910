package handler

import (
	"WithTheLake/internal/pkg/response"
	"WithTheLake/internal/service"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	audioSvc service.AudioService
}

func NewWsHandler(audioSvc service.AudioService) *WsHandler {
	return &WsHandler{audioSvc: audioSvc}
}

// Connect 推送播放器状态变更。每次状态迁移都会收到一份完整快照，
// 连接建立时先推当前状态，客户端无需另行拉取。
func (s *WsHandler) Connect(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WS 协议升级失败", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	snapCh, cancel := s.audioSvc.SubscribePlayer(sessionID)
	defer cancel()

	log.Info("播放器 WS 连接已建立", "sessionID", sessionID)

	// 先推当前快照
	if snapshot, err := s.audioSvc.GetPlayerSnapshot(c.Request.Context(), sessionID); err == nil {
		payload, _ := json.Marshal(snapshot)
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}

	stopChan := make(chan struct{})

	// 读循环：监听客户端主动断开
	go func() {
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				close(stopChan)
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-snapCh:
			if !ok {
				return
			}
			payload, _ := json.Marshal(snap)
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Error("播放器 WS 推送失败", "sessionID", sessionID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("播放器 WS 连接已断开", "sessionID", sessionID)
			return
		}
	}
}
