// Package stream consumes a parsed-block feed over a websocket, one JSON
// block per message. It is the client side of gprd's /api/stream endpoint,
// intended for toolpath visualizers that want blocks without re-parsing.
package stream

import (
	"io"

	"github.com/gorilla/websocket"

	"github.com/mastercactapus/gpr/gcode"
)

type Client struct {
	conn *websocket.Conn
}

var _ gcode.Reader = &Client{}

func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Read returns the next block from the feed. A normal close from the server
// ends the stream with io.EOF.
func (c *Client) Read() (gcode.Block, error) {
	var b gcode.Block
	err := c.conn.ReadJSON(&b)
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return gcode.Block{}, io.EOF
	}
	if err != nil {
		return gcode.Block{}, err
	}
	return b, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
