package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oceancam/fxcodec/lib/fxcodec"
)

type fakeCapturer struct {
	img *fxcodec.Image
	err error
}

func (f *fakeCapturer) CaptureFrame() (*fxcodec.Image, error) {
	return f.img, f.err
}

func testImage(w, h int) *fxcodec.Image {
	pixels := make([]byte, 3*w*h)
	for i := range pixels {
		pixels[i] = byte(i % 256)
	}
	return &fxcodec.Image{Width: w, Height: h, Colorspace: fxcodec.ColorspaceRGB, Pixels: pixels}
}

func newTestServer(cap Capturer) *httptest.Server {
	mux := http.NewServeMux()
	NewServer(cap).Register(mux)
	return httptest.NewServer(mux)
}

func TestProcessCompressedRoundTrip(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.Close()

	img := testImage(16, 16)
	client := NewClient(srv.URL)
	result, err := client.SendCompressed(img, fxcodec.KernelLoeffler, 2.0)
	if err != nil {
		t.Fatalf("SendCompressed: %v", err)
	}
	if result.Bundle.Width != 16 || result.Bundle.Height != 16 {
		t.Fatalf("bundle dims = %dx%d, want 16x16", result.Bundle.Width, result.Bundle.Height)
	}
	if result.Bundle.Method != fxcodec.KernelLoeffler {
		t.Fatalf("bundle method = %v, want loeffler", result.Bundle.Method)
	}
	if result.Bundle.NumBlocks != 4 {
		t.Fatalf("bundle num blocks = %d, want 4", result.Bundle.NumBlocks)
	}
}

func TestProcessRoundTrip(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.Close()

	img := testImage(8, 8)
	client := NewClient(srv.URL)
	result, err := client.SendImage(img, fxcodec.KernelMatrix, 1.0)
	if err != nil {
		t.Fatalf("SendImage: %v", err)
	}
	if result.Image.Width != 8 || result.Image.Height != 8 {
		t.Fatalf("image dims = %dx%d, want 8x8", result.Image.Width, result.Image.Height)
	}
	if result.PSNR <= 0 {
		t.Errorf("PSNR = %v, want > 0", result.PSNR)
	}
}

func TestCaptureCompressedUsesCapturer(t *testing.T) {
	cap := &fakeCapturer{img: testImage(8, 8)}
	srv := newTestServer(cap)
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.FetchCompressed(fxcodec.KernelApproximate, 1.0)
	if err != nil {
		t.Fatalf("FetchCompressed: %v", err)
	}
	if result.Bundle.NumBlocks != 1 {
		t.Fatalf("num blocks = %d, want 1", result.Bundle.NumBlocks)
	}
}

func TestCaptureWithoutCapturerIsNotImplemented(t *testing.T) {
	srv := newTestServer(nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/capture")
	if err != nil {
		t.Fatalf("GET /capture: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotImplemented {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotImplemented)
	}
}
