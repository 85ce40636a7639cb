package main

import (
	"errors"
	"testing"
)

func TestCloseOut(t *testing.T) {
	errClose := errors.New("close failed")
	errRun := errors.New("run failed")
	tests := []struct {
		name     string
		closeErr error
		runErr   error
		want     error
	}{
		{name: "clean", want: nil},
		{name: "close error surfaces", closeErr: errClose, want: errClose},
		{name: "run error wins", closeErr: errClose, runErr: errRun, want: errRun},
		{name: "run error kept", runErr: errRun, want: errRun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := 0
			cfg := &MainConfig{
				Out: "out.bin",
				CloseOut: func() error {
					closed++
					return tt.closeErr
				},
			}
			err := cfg.closeOut(tt.runErr)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("got %v, want nil", err)
				}
			} else if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if closed != 1 {
				t.Errorf("closed %d times, want 1", closed)
			}
			if err := cfg.closeOut(nil); err != nil {
				t.Errorf("second closeOut: %v", err)
			}
			if closed != 1 {
				t.Errorf("closed %d times after second closeOut, want 1", closed)
			}
		})
	}
}

func TestCloseOutStdout(t *testing.T) {
	cfg := &MainConfig{}
	if err := cfg.closeOut(nil); err != nil {
		t.Errorf("got %v without -o", err)
	}
}
