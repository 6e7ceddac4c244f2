package handler_test

import (
	"errors"
	"testing"

	"github.com/dshills/easylog/internal/dispatcher/handler"
	"github.com/dshills/easylog/internal/engine/buffer"
)

func TestResultStatus(t *testing.T) {
	tests := []struct {
		status   handler.ResultStatus
		expected string
	}{
		{handler.StatusOK, "ok"},
		{handler.StatusError, "error"},
		{handler.StatusCancelled, "cancelled"},
		{handler.ResultStatus(99), "unknown"},
	}

	for _, tc := range tests {
		if tc.status.String() != tc.expected {
			t.Errorf("ResultStatus(%d).String() = %q, want %q", tc.status, tc.status.String(), tc.expected)
		}
	}
}

func TestResultConstructors(t *testing.T) {
	if r := handler.Success(); !r.IsOK() || r.Error != nil {
		t.Errorf("Success() = %+v", r)
	}

	err := errors.New("boom")
	if r := handler.Error(err); !r.IsError() || !errors.Is(r.Error, err) {
		t.Errorf("Error() = %+v", r)
	}
	if r := handler.Errorf("bad %d", 3); r.Error.Error() != "bad 3" {
		t.Errorf("Errorf() error = %v", r.Error)
	}
	if r := handler.CancelledWithMessage("hook"); r.Status != handler.StatusCancelled || r.Message != "hook" {
		t.Errorf("CancelledWithMessage() = %+v", r)
	}
}

func TestResultBuilders(t *testing.T) {
	base := handler.Success()
	r := base.
		WithMessage("inserted").
		WithRedrawLines(3, 4).
		WithEdit(handler.Edit{Range: buffer.NewRange(5, 5), NewText: "x"}).
		WithData("target", "foo.bar")

	if base.Data != nil || base.Message != "" {
		t.Error("builders must not modify the receiver")
	}
	if r.Message != "inserted" {
		t.Errorf("unexpected message %q", r.Message)
	}
	if len(r.RedrawLines) != 2 || r.RedrawLines[1] != 4 {
		t.Errorf("unexpected redraw lines %v", r.RedrawLines)
	}
	if len(r.Edits) != 1 || r.Edits[0].NewText != "x" {
		t.Errorf("unexpected edits %v", r.Edits)
	}
	if r.GetDataString("target") != "foo.bar" {
		t.Errorf("unexpected data %v", r.Data)
	}
	if _, ok := r.GetData("missing"); ok {
		t.Error("expected missing key to be absent")
	}
	if handler.Success().GetDataString("x") != "" {
		t.Error("expected empty string for nil data")
	}
}
