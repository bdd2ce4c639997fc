package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// handleWebsocket treats every message on its own: binary messages are encoded and answered with a
// text message, text messages are decoded and answered with a binary message. A text message which
// cannot be decoded is answered with a JSON ErrorResponse, as a text message.
func (ws *HttpServer) handleWebsocket() http.HandlerFunc {
	var upgrader = websocket.Upgrader{
		EnableCompression: ws.EnableCompression,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		codec := codecFromRequest(w, r)
		if codec == nil {
			return
		}

		log.Debugf("New websocket client for %v", codec)
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// The upgrader has already replied with an HTTP error
			log.WithError(err).Errorf("Socket upgrade failed: %+v", err)
			return
		}
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Debugf("Could not close websocket: %v", err)
			}
		}()
		c.SetReadLimit(ws.MaxBodySize)

		for {
			messageType, data, err := c.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.WithError(err).Warnf("Websocket read failed: %v", err)
				}
				return
			}

			switch messageType {
			case websocket.BinaryMessage:
				err = c.WriteMessage(websocket.TextMessage, []byte(codec.Encode(data)))
			case websocket.TextMessage:
				decoded, decodeErr := codec.Decode(string(data))
				if decodeErr != nil {
					var msg []byte
					if msg, err = json.Marshal(NewErrorResponse(decodeErr)); err == nil {
						err = c.WriteMessage(websocket.TextMessage, msg)
					}
				} else {
					err = c.WriteMessage(websocket.BinaryMessage, decoded)
				}
			}
			if err != nil {
				log.WithError(errors.WithStack(err)).Warnf("Websocket write failed: %v", err)
				return
			}
		}
	}
}
