package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/oceancam/fxcodec/lib/fxcodec"
	"github.com/oceancam/fxcodec/lib/imageio"
)

// Client calls a host's /capture, /process, /capture_compressed and
// /process_compressed endpoints. Grounded on pc_receiver.py's
// fetch_compressed/fetch_method_a/send_image_process/
// send_image_compressed quartet, with a shared *http.Client instead of
// the Python module's bare requests.get/post calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client targeting baseURL (no trailing slash),
// with a sensible request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CompressedResult is the decoded response of FetchCompressed and
// SendCompressed: a QuantizedBundle plus the timing and transfer
// metadata that travelled as headers.
type CompressedResult struct {
	Bundle          *fxcodec.QuantizedBundle
	CompressTimeUs  int64
	TransferTimeUs  int64
	CompressedBytes int
}

// FetchCompressed calls GET /capture_compressed on the device at
// c.BaseURL: the device captures its own frame and returns compressed
// coefficients.
func (c *Client) FetchCompressed(kernel fxcodec.Kernel, k float64) (*CompressedResult, error) {
	url := fmt.Sprintf("%s/capture_compressed?method=%s&quality=%s", c.BaseURL, kernel, formatK(k))
	t0 := time.Now()
	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "transport: GET /capture_compressed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: /capture_compressed: %s", resp.Status)
	}
	return decodeCompressedResponse(resp, time.Since(t0))
}

// SendCompressed calls POST /process_compressed: upload a raw RGB888
// image and receive its compressed coefficients back.
func (c *Client) SendCompressed(img *fxcodec.Image, kernel fxcodec.Kernel, k float64) (*CompressedResult, error) {
	url := fmt.Sprintf("%s/process_compressed?method=%s&quality=%s&width=%d&height=%d",
		c.BaseURL, kernel, formatK(k), img.Width, img.Height)
	t0 := time.Now()
	resp, err := c.HTTPClient.Post(url, "application/octet-stream", bytes.NewReader(img.Pixels))
	if err != nil {
		return nil, errors.Wrap(err, "transport: POST /process_compressed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: /process_compressed: %s", resp.Status)
	}
	return decodeCompressedResponse(resp, time.Since(t0))
}

func decodeCompressedResponse(resp *http.Response, transfer time.Duration) (*CompressedResult, error) {
	h := resp.Header
	width, err := strconv.Atoi(h.Get("X-Width"))
	if err != nil {
		return nil, errors.Wrap(err, "transport: X-Width")
	}
	height, err := strconv.Atoi(h.Get("X-Height"))
	if err != nil {
		return nil, errors.Wrap(err, "transport: X-Height")
	}
	method, err := fxcodec.ParseKernel(h.Get("X-Method"))
	if err != nil {
		return nil, err
	}
	quality, err := strconv.ParseFloat(h.Get("X-Quality"), 64)
	if err != nil {
		return nil, errors.Wrap(err, "transport: X-Quality")
	}
	numBlocks, err := strconv.Atoi(h.Get("X-Num-Blocks"))
	if err != nil {
		return nil, errors.Wrap(err, "transport: X-Num-Blocks")
	}
	compressUs, _ := strconv.ParseInt(h.Get("X-Compress-Time-Us"), 10, 64)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "transport: read body")
	}
	bundle := &fxcodec.QuantizedBundle{Width: width, Height: height, K: quality, Method: method, NumBlocks: numBlocks}
	if err := bundle.DecodeWireBody(body); err != nil {
		return nil, err
	}
	return &CompressedResult{
		Bundle:          bundle,
		CompressTimeUs:  compressUs,
		TransferTimeUs:  transfer.Microseconds(),
		CompressedBytes: len(body),
	}, nil
}

// ImageResult is the decoded response of FetchImage and SendImage.
type ImageResult struct {
	Image            *fxcodec.Image
	PSNR             float64
	Bitrate          float64
	CompressTimeUs   int64
	DecompressTimeUs int64
	TotalTimeUs      int64
}

// FetchImage calls GET /capture: the device captures, compresses, and
// reconstructs its own frame, returning the reconstructed PNG.
func (c *Client) FetchImage(kernel fxcodec.Kernel, k float64) (*ImageResult, error) {
	url := fmt.Sprintf("%s/capture?method=%s&quality=%s", c.BaseURL, kernel, formatK(k))
	t0 := time.Now()
	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "transport: GET /capture")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: /capture: %s", resp.Status)
	}
	return decodeImageResponse(resp, time.Since(t0))
}

// SendImage calls POST /process: upload a raw RGB888 image and receive
// back its reconstructed form plus quality metrics.
func (c *Client) SendImage(img *fxcodec.Image, kernel fxcodec.Kernel, k float64) (*ImageResult, error) {
	url := fmt.Sprintf("%s/process?method=%s&quality=%s&width=%d&height=%d",
		c.BaseURL, kernel, formatK(k), img.Width, img.Height)
	t0 := time.Now()
	resp, err := c.HTTPClient.Post(url, "application/octet-stream", bytes.NewReader(img.Pixels))
	if err != nil {
		return nil, errors.Wrap(err, "transport: POST /process")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport: /process: %s", resp.Status)
	}
	return decodeImageResponse(resp, time.Since(t0))
}

func decodeImageResponse(resp *http.Response, total time.Duration) (*ImageResult, error) {
	img, err := imageio.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	h := resp.Header
	psnr, _ := strconv.ParseFloat(h.Get("X-PSNR"), 64)
	bitrate, _ := strconv.ParseFloat(h.Get("X-Bitrate"), 64)
	compressUs, _ := strconv.ParseInt(h.Get("X-Compress-Time-Us"), 10, 64)
	decompressUs, _ := strconv.ParseInt(h.Get("X-Decompress-Time-Us"), 10, 64)
	return &ImageResult{
		Image:            img,
		PSNR:             psnr,
		Bitrate:          bitrate,
		CompressTimeUs:   compressUs,
		DecompressTimeUs: decompressUs,
		TotalTimeUs:      total.Microseconds(),
	}, nil
}

func formatK(k float64) string {
	return strconv.FormatFloat(k, 'f', -1, 64)
}
