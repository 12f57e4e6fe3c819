package report

import (
	"math"
	"testing"
)

func TestPSNRIdenticalIsInf(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	got, err := PSNR(buf, buf)
	if err != nil {
		t.Fatalf("PSNR: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("PSNR(identical) = %v; want +Inf", got)
	}
}

func TestPSNRDecreasesWithError(t *testing.T) {
	source := make([]byte, 256)
	for i := range source {
		source[i] = byte(i)
	}

	small := make([]byte, len(source))
	copy(small, source)
	small[0] += 1

	large := make([]byte, len(source))
	copy(large, source)
	large[0] += 40

	psnrSmall, err := PSNR(source, small)
	if err != nil {
		t.Fatalf("PSNR(small): %v", err)
	}
	psnrLarge, err := PSNR(source, large)
	if err != nil {
		t.Fatalf("PSNR(large): %v", err)
	}
	if psnrSmall <= psnrLarge {
		t.Errorf("PSNR should drop as error grows: small-error=%.2f large-error=%.2f", psnrSmall, psnrLarge)
	}
}

func TestMSEZeroLength(t *testing.T) {
	got, err := MSE(nil, nil)
	if err != nil {
		t.Fatalf("MSE: %v", err)
	}
	if got != 0 {
		t.Errorf("MSE(nil, nil) = %v; want 0", got)
	}
}

func TestMSELengthMismatchReturnsError(t *testing.T) {
	if _, err := MSE([]byte{1, 2, 3}, []byte{1, 2}); err == nil {
		t.Error("MSE with mismatched lengths: err = nil; want non-nil")
	}
	if _, err := PSNR([]byte{1, 2, 3}, []byte{1, 2}); err == nil {
		t.Error("PSNR with mismatched lengths: err = nil; want non-nil")
	}
}
