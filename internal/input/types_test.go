package input

import "testing"

func TestActionSourceString(t *testing.T) {
	tests := []struct {
		src  ActionSource
		want string
	}{
		{SourceKeyboard, "keyboard"},
		{SourcePalette, "palette"},
		{SourcePlugin, "plugin"},
		{SourceAPI, "api"},
		{ActionSource(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.src.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestActionWithExtra(t *testing.T) {
	a := Action{Name: "debuglog.log"}
	b := a.WithExtra("dryRun", true).WithExtra("tag", "x")

	if a.Args.Extra != nil {
		t.Error("original action should be unchanged")
	}
	if !b.Args.GetBool("dryRun") {
		t.Error("expected dryRun to be true")
	}
	if b.Args.GetString("tag") != "x" {
		t.Errorf("expected tag 'x', got %q", b.Args.GetString("tag"))
	}
	if b.Args.GetString("dryRun") != "" {
		t.Error("GetString on a bool should return empty")
	}
	if b.Args.GetBool("missing") {
		t.Error("missing key should be false")
	}
}
