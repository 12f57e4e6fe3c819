package transport

import (
	"encoding/binary"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oceancam/fxcodec/lib/fxcodec"
)

// Supplemental low-latency transport: successive compressed bundles
// pushed over a single websocket connection instead of one HTTP
// request per frame, grounded on kulaginds/rdp-html5's use of
// github.com/gorilla/websocket for its own per-frame update stream.
// Frame layout on the wire is a small fixed header (width, height,
// method, num_blocks, k; see writeBundleFrame) immediately followed by
// the same
// EncodeWireBody payload, so a receiver can share decoding logic with
// the request/response path.

const (
	streamReadBufferSize  = 4096
	streamWriteBufferSize = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  streamReadBufferSize,
	WriteBufferSize: streamWriteBufferSize,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamHeaderLen is width, height, method, numBlocks (uint32 each)
// plus k (float64) — fixed-width so a reader can parse it without a
// delimiter.
const streamHeaderLen = 4*4 + 8

// StreamServer pushes a Capturer's frames to a websocket client as
// fast as the caller's loop drives it, compressing each with the same
// fxcodec.Compress path the HTTP handlers use.
type StreamServer struct {
	Capturer Capturer
}

// NewStreamServer returns a StreamServer backed by cap.
func NewStreamServer(cap Capturer) *StreamServer {
	return &StreamServer{Capturer: cap}
}

// HandleStream upgrades the request to a websocket and pushes one
// compressed bundle per interval until a write to the client fails or
// the request's context is done. It is registered by callers at their own path (e.g.
// "/stream") since spec.md's wire contract does not name one.
func (s *StreamServer) HandleStream(w http.ResponseWriter, r *http.Request, kernel fxcodec.Kernel, k float64, interval time.Duration) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("transport: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			img, err := s.Capturer.CaptureFrame()
			if err != nil {
				log.Printf("transport: capture frame: %v", err)
				return
			}
			bundle, err := fxcodec.Compress(img, fxcodec.Params{K: k, Method: kernel})
			if err != nil {
				log.Printf("transport: compress frame: %v", err)
				return
			}
			if err := writeBundleFrame(conn, bundle); err != nil {
				log.Printf("transport: write frame: %v", err)
				return
			}
		}
	}
}

func writeBundleFrame(conn *websocket.Conn, bundle *fxcodec.QuantizedBundle) error {
	body := bundle.EncodeWireBody()
	frame := make([]byte, streamHeaderLen+len(body))
	binary.LittleEndian.PutUint32(frame[0:], uint32(bundle.Width))
	binary.LittleEndian.PutUint32(frame[4:], uint32(bundle.Height))
	binary.LittleEndian.PutUint32(frame[8:], uint32(bundle.Method))
	binary.LittleEndian.PutUint32(frame[12:], uint32(bundle.NumBlocks))
	binary.LittleEndian.PutUint64(frame[16:], math.Float64bits(bundle.K))
	copy(frame[streamHeaderLen:], body)
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}

// StreamClient connects to a StreamServer and decodes each pushed
// frame back into a QuantizedBundle.
type StreamClient struct {
	conn *websocket.Conn
}

// DialStream opens a websocket connection to url (e.g.
// "ws://host:port/stream").
func DialStream(url string) (*StreamClient, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &StreamClient{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *StreamClient) Close() error {
	return c.conn.Close()
}

// ReadBundle blocks for the next pushed frame and decodes it.
func (c *StreamClient) ReadBundle() (*fxcodec.QuantizedBundle, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	width := binary.LittleEndian.Uint32(data[0:])
	height := binary.LittleEndian.Uint32(data[4:])
	method := fxcodec.Kernel(binary.LittleEndian.Uint32(data[8:]))
	numBlocks := binary.LittleEndian.Uint32(data[12:])
	k := math.Float64frombits(binary.LittleEndian.Uint64(data[16:]))

	bundle := &fxcodec.QuantizedBundle{
		Width:     int(width),
		Height:    int(height),
		Method:    method,
		NumBlocks: int(numBlocks),
		K:         k,
	}
	if err := bundle.DecodeWireBody(data[streamHeaderLen:]); err != nil {
		return nil, err
	}
	return bundle, nil
}
