package launch

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestOpenCommand_PerPlatform(t *testing.T) {
	tests := []struct {
		goos   string
		target string
		want   []string
	}{
		{"windows", `C:\Tools\editor.lnk`, []string{"cmd", "/C", "start", "", `C:\Tools\editor.lnk`}},
		{"darwin", "/Applications/Notes.app", []string{"open", "/Applications/Notes.app"}},
		{"linux", "https://example.com", []string{"xdg-open", "https://example.com"}},
		{"freebsd", "/usr/local/bin/tool", []string{"xdg-open", "/usr/local/bin/tool"}},
	}

	for _, tt := range tests {
		cmd := openCommand(tt.goos, tt.target)
		if !reflect.DeepEqual(cmd.Args, tt.want) {
			t.Errorf("openCommand(%q, %q) args = %v, want %v", tt.goos, tt.target, cmd.Args, tt.want)
		}
	}
}

func TestShellOpener_DoesNotWait(t *testing.T) {
	var started []string
	opener := &ShellOpener{
		goos: "linux",
		start: func(cmd *exec.Cmd) error {
			started = append(started, cmd.Args[len(cmd.Args)-1])
			return nil
		},
	}

	if err := opener.OpenPath("/tmp/a.desktop"); err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	if err := opener.OpenURL("https://example.com"); err != nil {
		t.Fatalf("OpenURL: %v", err)
	}

	want := []string{"/tmp/a.desktop", "https://example.com"}
	if !reflect.DeepEqual(started, want) {
		t.Errorf("started targets = %v, want %v", started, want)
	}
}

func TestShellOpener_SpawnFailureIsReturned(t *testing.T) {
	spawnErr := errors.New("executable file not found")
	opener := &ShellOpener{
		goos:  "linux",
		start: func(*exec.Cmd) error { return spawnErr },
	}

	err := opener.OpenPath("/does/not/matter")
	if err == nil {
		t.Fatal("expected error from failed spawn")
	}
	if !errors.Is(err, spawnErr) {
		t.Errorf("error %v does not wrap spawn error", err)
	}
}
