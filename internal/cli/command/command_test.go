package command

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// runApp executes the CLI with captured streams and an isolated
// environment (empty working dir, fresh HOME, no ambient secrets).
func runApp(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return runAppEnv(t, stdin, nil, args...)
}

// runAppEnv is runApp with extra environment variables applied after
// the ambient scrub.
func runAppEnv(t *testing.T, stdin string, env map[string]string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if chdirErr := os.Chdir(t.TempDir()); chdirErr != nil {
		t.Fatal(chdirErr)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"ADMINTOK_SECRET", "ADMIN_SECRET", "ADMINTOK_CONFIG", "ADMINTOK_OUTPUT", "ADMINTOK_LOG_LEVEL", "ADMINTOK_LOG_FORMAT"} {
		if old, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	var out, errBuf bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &errBuf
	app.Reader = strings.NewReader(stdin)

	err = app.Run(append([]string{"admintok"}, args...))
	return out.String(), errBuf.String(), err
}

func TestApp(t *testing.T) {
	app := App()

	if app.Name != "admintok" {
		t.Errorf("Name = %q, want %q", app.Name, "admintok")
	}
	if app.DefaultCommand != "generate" {
		t.Errorf("DefaultCommand = %q, want %q", app.DefaultCommand, "generate")
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"generate", "keygen", "version"} {
		if !names[want] {
			t.Errorf("missing command: %s", want)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range globalFlags() {
		flagNames[f.Names()[0]] = true
	}

	for _, want := range []string{"config", "env-file", "output", "quiet", "log-level", "log-format"} {
		if !flagNames[want] {
			t.Errorf("missing global flag: %s", want)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	cmd := GenerateCommand()

	if cmd.Name != "generate" {
		t.Errorf("Name = %q, want %q", cmd.Name, "generate")
	}
	if len(cmd.Aliases) == 0 || cmd.Aliases[0] != "gen" {
		t.Error("expected alias 'gen'")
	}
	if cmd.Action == nil {
		t.Error("generate command should have an action")
	}

	flagNames := make(map[string]bool)
	for _, f := range cmd.Flags {
		flagNames[f.Names()[0]] = true
	}
	if !flagNames["secret"] {
		t.Error("generate should have --secret flag")
	}
}

func TestKeygenCommand(t *testing.T) {
	cmd := KeygenCommand()

	if cmd.Name != "keygen" {
		t.Errorf("Name = %q, want %q", cmd.Name, "keygen")
	}
	if cmd.Action == nil {
		t.Error("keygen command should have an action")
	}

	flagNames := make(map[string]bool)
	for _, f := range cmd.Flags {
		flagNames[f.Names()[0]] = true
	}
	if !flagNames["bytes"] {
		t.Error("keygen should have --bytes flag")
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := VersionCommand()

	if cmd.Name != "version" {
		t.Errorf("Name = %q, want %q", cmd.Name, "version")
	}
	if cmd.Action == nil {
		t.Error("version command should have an action")
	}
}
