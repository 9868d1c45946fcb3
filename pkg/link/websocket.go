package link

import (
	"net/url"

	"golang.org/x/net/websocket"
)

// DialWebsocket connects to a websocket bridge forwarding the raw bytes of
// a remote serial port in binary frames.
func DialWebsocket(wsURL string) (*websocket.Conn, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, err
	}
	origin := "http://" + u.Host
	if u.Scheme == "wss" {
		origin = "https://" + u.Host
	}
	conn, err := websocket.Dial(wsURL, "", origin)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return conn, nil
}
