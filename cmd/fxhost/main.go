// Command fxhost serves the receiving side of the device/host
// protocol: it decompresses whatever a device sends, writes each
// reconstructed image to disk, and keeps a running comparison report
// across kernels and k values (SPEC_FULL.md §11.5).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/oceancam/fxcodec/lib/report"
	"github.com/oceancam/fxcodec/lib/transport"
)

func main() {
	var (
		addr      string
		outDir    string
		chartPath string
		logPath   string
	)
	flag.StringVar(&addr, "addr", ":8080", "Address to listen on")
	flag.StringVar(&outDir, "out", "reconstructed", "Directory to write reconstructed PNGs into")
	flag.StringVar(&chartPath, "chart", "", "If set, rewrite a PSNR-vs-k chart here after each reconstruction (best effort)")
	flag.StringVar(&logPath, "log", "fxhost.log", "Log file path")
	flag.Parse()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "fxhost: create output dir: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(logPath)
	defer logger.Sync()

	rep := &comparisonReport{chartPath: chartPath}

	mux := http.NewServeMux()
	transport.NewServer(nil).Register(mux)

	handler := saveReconstructions(outDir, logger, rep, mux)
	handler = logRequests(logger, handler)

	logger.Info("fxhost listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}

// comparisonReport accumulates one SweepPoint per successful
// image-reconstruction request, mirroring compare_methods.py's
// in-memory accumulation before it renders a chart.
type comparisonReport struct {
	mu        sync.Mutex
	points    []report.SweepPoint
	chartPath string
}

func (r *comparisonReport) add(pt report.SweepPoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points = append(r.points, pt)
	if r.chartPath == "" {
		return
	}
	_ = report.SavePSNRVsK(r.points, r.chartPath)
}

// responseRecorder tees a response body so middleware can both forward
// it to the client and persist or inspect it afterward.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (rr *responseRecorder) WriteHeader(status int) {
	rr.status = status
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.body.Write(b)
	return rr.ResponseWriter.Write(b)
}

// logRequests logs method, path, status and the quality headers the
// transport handlers set, the way a device operator would want to
// monitor a long-running comparison run.
func logRequests(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		t0 := time.Now()
		next.ServeHTTP(rr, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rr.status),
			zap.Duration("elapsed", time.Since(t0)),
			zap.String("x_method", w.Header().Get("X-Method")),
			zap.String("x_psnr", w.Header().Get("X-PSNR")),
			zap.String("x_bitrate", w.Header().Get("X-Bitrate")),
		)
	})
}

// saveReconstructions writes a copy of every successful /capture or
// /process PNG response to outDir, and appends a comparison-report
// point from the response headers.
func saveReconstructions(outDir string, logger *zap.Logger, rep *comparisonReport, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/capture" && r.URL.Path != "/process" {
			next.ServeHTTP(w, r)
			return
		}
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rr, r)
		if rr.status != http.StatusOK {
			return
		}

		method := w.Header().Get("X-Method")
		quality := w.Header().Get("X-Quality")
		name := fmt.Sprintf("%s_k%s_%d.png", method, quality, time.Now().UnixNano())
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, rr.body.Bytes(), 0o644); err != nil {
			logger.Error("write reconstructed image", zap.String("path", path), zap.Error(err))
			return
		}

		k, _ := strconv.ParseFloat(quality, 64)
		psnr, _ := strconv.ParseFloat(w.Header().Get("X-PSNR"), 64)
		bitrate, _ := strconv.ParseFloat(w.Header().Get("X-Bitrate"), 64)
		rep.add(report.SweepPoint{Kernel: method, K: k, PSNR: psnr, Bitrate: bitrate})
	})
}

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
