// Package transport implements the HTTP wire contract between a device
// that captures images and a host that receives compressed coefficient
// bundles or reconstructed images (SPEC_FULL.md §11.2). The contract
// itself — endpoint paths, header names, body layouts — is taken
// line-for-line from original_source/pc_receiver.py's ancestor
// protocol; the server plumbing follows
// dlecorfec-progjpeg/cmd/progjpeg/main.go's plain net/http style.
package transport

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/oceancam/fxcodec/lib/fxcodec"
	"github.com/oceancam/fxcodec/lib/imageio"
	"github.com/oceancam/fxcodec/lib/report"
)

// Capturer supplies the image a GET request compresses or reconstructs;
// lib/capture's Capturer implementations satisfy it. Tests and
// cmd/fxhost (which only ever receives POSTed images) leave it nil.
type Capturer interface {
	CaptureFrame() (*fxcodec.Image, error)
}

// Server holds the handlers for the four device/host endpoints. It is
// safe for concurrent use: Compress and Decompress hold no shared
// state, and the Capturer is expected to be internally synchronized if
// it wraps hardware.
type Server struct {
	Capturer Capturer
}

// NewServer returns a Server backed by cap, which may be nil if this
// process never serves /capture or /capture_compressed.
func NewServer(cap Capturer) *Server {
	return &Server{Capturer: cap}
}

// Register attaches the four endpoints to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/capture_compressed", s.handleCaptureCompressed)
	mux.HandleFunc("/process_compressed", s.handleProcessCompressed)
	mux.HandleFunc("/capture", s.handleCapture)
	mux.HandleFunc("/process", s.handleProcess)
}

func parseParams(q map[string][]string) (fxcodec.Params, error) {
	method := first(q["method"], "loeffler")
	k, err := strconv.ParseFloat(first(q["quality"], "1.0"), 64)
	if err != nil {
		return fxcodec.Params{}, errors.Wrap(err, "transport: parse quality")
	}
	kernel, err := fxcodec.ParseKernel(method)
	if err != nil {
		return fxcodec.Params{}, err
	}
	return fxcodec.Params{K: k, Method: kernel}, nil
}

func first(vals []string, def string) string {
	if len(vals) == 0 || vals[0] == "" {
		return def
	}
	return vals[0]
}

func setBundleHeaders(w http.ResponseWriter, bundle *fxcodec.QuantizedBundle, compressUs int64) {
	h := w.Header()
	h.Set("X-Width", strconv.Itoa(bundle.Width))
	h.Set("X-Height", strconv.Itoa(bundle.Height))
	h.Set("X-Method", bundle.Method.String())
	h.Set("X-Quality", strconv.FormatFloat(bundle.K, 'f', -1, 64))
	h.Set("X-Num-Blocks", strconv.Itoa(bundle.NumBlocks))
	h.Set("X-Compress-Time-Us", strconv.FormatInt(compressUs, 10))
	h.Set("X-Bitrate", strconv.FormatFloat(fxcodec.EstimateBitrate(bundle), 'f', 6, 64))
}

// handleCaptureCompressed implements GET /capture_compressed — capture
// a frame on this device and return its compressed coefficient body.
func (s *Server) handleCaptureCompressed(w http.ResponseWriter, r *http.Request) {
	if s.Capturer == nil {
		http.Error(w, "transport: no capturer configured", http.StatusNotImplemented)
		return
	}
	img, err := s.Capturer.CaptureFrame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	p, err := parseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t0 := time.Now()
	bundle, err := fxcodec.Compress(img, p)
	compressUs := time.Since(t0).Microseconds()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	setBundleHeaders(w, bundle, compressUs)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(bundle.EncodeWireBody())
}

// handleProcessCompressed implements POST /process_compressed — accept
// a raw RGB888 body from the caller and return its compressed
// coefficient body, for hosts that want to benchmark compression
// without dedicated capture hardware.
func (s *Server) handleProcessCompressed(w http.ResponseWriter, r *http.Request) {
	img, err := decodeRawRGB(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := parseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t0 := time.Now()
	bundle, err := fxcodec.Compress(img, p)
	compressUs := time.Since(t0).Microseconds()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	setBundleHeaders(w, bundle, compressUs)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(bundle.EncodeWireBody())
}

// handleCapture implements GET /capture — capture, compress, and
// immediately reconstruct, returning a PNG with quality headers. This
// is "Method A" in the original: full round trip measured on one side.
func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	if s.Capturer == nil {
		http.Error(w, "transport: no capturer configured", http.StatusNotImplemented)
		return
	}
	img, err := s.Capturer.CaptureFrame()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.roundTripAndRespond(w, r, img)
}

// handleProcess implements POST /process — accept a raw RGB888 body
// and respond the same way as /capture.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	img, err := decodeRawRGB(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.roundTripAndRespond(w, r, img)
}

func (s *Server) roundTripAndRespond(w http.ResponseWriter, r *http.Request, img *fxcodec.Image) {
	p, err := parseParams(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	t0 := time.Now()
	bundle, err := fxcodec.Compress(img, p)
	compressUs := time.Since(t0).Microseconds()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	t1 := time.Now()
	recon, err := fxcodec.Decompress(bundle)
	decompressUs := time.Since(t1).Microseconds()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	psnr, err := report.PSNR(img.Pixels, recon.Pixels)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	setBundleHeaders(w, bundle, compressUs)
	w.Header().Set("X-PSNR", strconv.FormatFloat(psnr, 'f', 4, 64))
	w.Header().Set("X-Decompress-Time-Us", strconv.FormatInt(decompressUs, 10))
	w.Header().Set("Content-Type", "image/png")
	if err := imageio.Encode(w, recon, imageio.FormatPNG); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// decodeRawRGB reads a request body that is a raw, uncompressed RGB888
// frame (spec.md's wire format, sent with width/height query
// parameters rather than any container header).
func decodeRawRGB(r *http.Request) (*fxcodec.Image, error) {
	w, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || w <= 0 {
		return nil, fmt.Errorf("transport: bad width query parameter")
	}
	h, err := strconv.Atoi(r.URL.Query().Get("height"))
	if err != nil || h <= 0 {
		return nil, fmt.Errorf("transport: bad height query parameter")
	}
	want := 3 * w * h
	body := make([]byte, want)
	if _, err := io.ReadFull(r.Body, body); err != nil {
		return nil, errors.Wrapf(err, "transport: read %dx%d RGB888 body", w, h)
	}
	return &fxcodec.Image{Width: w, Height: h, Colorspace: fxcodec.ColorspaceRGB, Pixels: body}, nil
}
