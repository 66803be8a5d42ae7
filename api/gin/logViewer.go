package gin

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const logViewerPath = "/log"

// wsLogWriter forwards every formatted log line as a websocket text message
type wsLogWriter struct {
	mutConn sync.Mutex
	conn    *websocket.Conn
}

// Write sends the provided log line on the websocket connection
func (w *wsLogWriter) Write(p []byte) (int, error) {
	w.mutConn.Lock()
	defer w.mutConn.Unlock()

	err := w.conn.WriteMessage(websocket.TextMessage, p)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

func registerLoggerWsRoute(ws *gin.Engine) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws.GET(logViewerPath, func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error("cannot upgrade log viewer connection", "error", err.Error())
			return
		}

		streamLogs(conn)
	})
}

func streamLogs(conn *websocket.Conn) {
	writer := &wsLogWriter{conn: conn}
	defer func() {
		_ = conn.Close()
	}()

	err := logger.AddLogObserver(writer, &logger.PlainFormatter{})
	if err != nil {
		log.Error("cannot attach log viewer", "error", err.Error())
		return
	}
	log.Debug("log viewer attached", "remote", conn.RemoteAddr().String())

	// the client never sends data; a read error means it went away
	for {
		_, _, err = conn.ReadMessage()
		if err != nil {
			break
		}
	}

	err = logger.RemoveLogObserver(writer)
	if err != nil {
		log.Debug("cannot detach log viewer", "error", err.Error())
	}
	log.Debug("log viewer detached", "remote", conn.RemoteAddr().String())
}
