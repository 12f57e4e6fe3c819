//go:build fxcodec_gocv

package capture

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/oceancam/fxcodec/lib/fxcodec"
)

// WebcamCapturer grabs frames from a local video device through
// gocv.io/x/gocv's OpenCV bindings, the same library ausocean/av uses
// for its frame-capture pipeline. It is isolated behind the
// fxcodec_gocv build tag so the default build needs no cgo/OpenCV
// toolchain; only a caller that opts in with -tags fxcodec_gocv pulls
// this dependency in.
type WebcamCapturer struct {
	vc *gocv.VideoCapture
}

// NewWebcamCapturer opens device index deviceID (0 for the default
// camera).
func NewWebcamCapturer(deviceID int) (*WebcamCapturer, error) {
	vc, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, errors.Wrapf(err, "capture: open video device %d", deviceID)
	}
	return &WebcamCapturer{vc: vc}, nil
}

// Close releases the underlying video device.
func (w *WebcamCapturer) Close() error {
	return w.vc.Close()
}

// CaptureFrame grabs one frame and converts it from gocv's BGR Mat
// layout to an interleaved RGB fxcodec.Image.
func (w *WebcamCapturer) CaptureFrame() (*fxcodec.Image, error) {
	mat := gocv.NewMat()
	defer mat.Close()

	if ok := w.vc.Read(&mat); !ok || mat.Empty() {
		return nil, errors.New("capture: failed to read frame from video device")
	}

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(mat, &rgb, gocv.ColorBGRToRGB)

	width, height := rgb.Cols(), rgb.Rows()
	pixels := make([]byte, 3*width*height)
	copy(pixels, rgb.ToBytes())

	return &fxcodec.Image{
		Width:      width,
		Height:     height,
		Colorspace: fxcodec.ColorspaceRGB,
		Pixels:     pixels,
	}, nil
}
