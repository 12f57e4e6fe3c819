// Command fxdevice loads a still image and posts it to a host once per
// point of a sweep of kernels and quantization strengths, logging the
// compressed bundle or reconstruction the host sends back
// (SPEC_FULL.md §11.5). Flag handling follows
// dlecorfec-progjpeg/cmd/progjpeg/main.go's flat flag.StringVar style.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/oceancam/fxcodec/lib/capture"
	"github.com/oceancam/fxcodec/lib/fxcodec"
	"github.com/oceancam/fxcodec/lib/transport"
)

func main() {
	var (
		in         string
		host       string
		methods    string
		ks         string
		logPath    string
		compressed bool
	)
	flag.StringVar(&in, "i", "", "Input image file path (PNG/JPEG/BMP)")
	flag.StringVar(&host, "host", "http://localhost:8080", "Base URL of the receiving fxhost")
	flag.StringVar(&methods, "methods", "loeffler,matrix,approx", "Comma-separated kernel names to sweep")
	flag.StringVar(&ks, "k", "1,2,4", "Comma-separated quantization strengths to sweep")
	flag.StringVar(&logPath, "log", "fxdevice.log", "Log file path")
	flag.BoolVar(&compressed, "compressed", true, "POST to /process_compressed instead of /process")
	flag.Parse()

	if in == "" {
		fmt.Fprintln(os.Stderr, "fxdevice: -i input image path is required")
		os.Exit(1)
	}

	logger := newLogger(logPath)
	defer logger.Sync()

	cap, err := capture.NewFileCapturer(in)
	if err != nil {
		logger.Fatal("load input image", zap.Error(err))
	}
	img, err := cap.CaptureFrame()
	if err != nil {
		logger.Fatal("capture frame", zap.Error(err))
	}

	kernels, err := parseKernels(methods)
	if err != nil {
		logger.Fatal("parse -methods", zap.Error(err))
	}
	kValues, err := parseFloats(ks)
	if err != nil {
		logger.Fatal("parse -k", zap.Error(err))
	}

	client := transport.NewClient(host)

	for _, kernel := range kernels {
		for _, k := range kValues {
			runOne(logger, client, img, kernel, k, compressed)
		}
	}
}

func runOne(logger *zap.Logger, client *transport.Client, img *fxcodec.Image, kernel fxcodec.Kernel, k float64, compressed bool) {
	fields := []zap.Field{zap.Stringer("kernel", kernel), zap.Float64("k", k)}
	if compressed {
		result, err := client.SendCompressed(img, kernel, k)
		if err != nil {
			logger.Error("send compressed", append(fields, zap.Error(err))...)
			return
		}
		logger.Info("sent compressed bundle",
			append(fields,
				zap.Int("num_blocks", result.Bundle.NumBlocks),
				zap.Int("compressed_bytes", result.CompressedBytes),
				zap.Int64("compress_time_us", result.CompressTimeUs),
				zap.Int64("transfer_time_us", result.TransferTimeUs),
			)...)
		return
	}

	result, err := client.SendImage(img, kernel, k)
	if err != nil {
		logger.Error("send image", append(fields, zap.Error(err))...)
		return
	}
	logger.Info("sent image, received reconstruction",
		append(fields,
			zap.Float64("psnr", result.PSNR),
			zap.Float64("bitrate", result.Bitrate),
			zap.Int64("compress_time_us", result.CompressTimeUs),
			zap.Int64("decompress_time_us", result.DecompressTimeUs),
		)...)
}

func parseKernels(csv string) ([]fxcodec.Kernel, error) {
	var out []fxcodec.Kernel
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		k, err := fxcodec.ParseKernel(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func parseFloats(csv string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("fxdevice: bad k value %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// newLogger builds a zap logger writing JSON lines to a
// lumberjack-rotated file, the logging stack ausocean/av's go.mod
// carries for its own device-side binaries.
func newLogger(path string) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
