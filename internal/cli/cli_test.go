package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
	"github.com/AlexanderBrevig/mdb/internal/template"
	"github.com/AlexanderBrevig/mdb/internal/testutil"
)

type recordingEditor struct {
	opened []string
}

func (e *recordingEditor) Open(_ context.Context, path string) error {
	e.opened = append(e.opened, path)
	return nil
}

type harness struct {
	ws     *testutil.Workspace
	config string
	editor *recordingEditor
	stderr bytes.Buffer
}

func newHarness(t *testing.T, ws *testutil.Workspace) *harness {
	t.Helper()
	ws.Build()
	h := &harness{ws: ws, editor: &recordingEditor{}}
	h.config = ws.WriteConfig(fmt.Sprintf(`
[config]
data = %q

[[templates]]
id = "default"
content = "# $NAME\n"
name = { text = "inbox" }

[[templates]]
id = "meeting"
content = "## $NAME in $PWD\n"
name = { text = "standup" }
`, ws.Data))
	return h
}

// run executes mdb with args and returns stdout and the returned error.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(Options{
		WorkDir: h.ws.WorkDir(),
		Editor:  h.editor,
		Stderr:  &h.stderr,
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", h.config}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) runJSON(t *testing.T, args ...string) *testutil.CLIResult {
	t.Helper()
	out, _ := h.run(t, append([]string{"--json"}, args...)...)
	return testutil.ParseCLIResult(t, out)
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "weekly.md"), []byte("w"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newApp(Options{})
	content := "x"
	a.store = template.NewStore([]template.Template{
		{ID: "default", Content: &content},
		{ID: "meeting", Content: &content},
	}, dir)

	tests := []struct {
		name     string
		template string
		args     []string
		want     action.Named
	}{
		{name: "nothing", want: action.Default()},
		{name: "plain name", args: []string{"ideas"}, want: action.Name("ideas")},
		{name: "configured template", args: []string{"meeting"}, want: action.Template("meeting")},
		{name: "body file template", args: []string{"weekly"}, want: action.Template("weekly")},
		{name: "flag only", template: "meeting", want: action.Template("meeting")},
		{
			name:     "flag keeps positional as name",
			template: "meeting",
			args:     []string{"weekly"},
			want:     action.TemplateWithName("meeting", "weekly"),
		},
		{name: "flag accepts body file", template: "weekly", args: []string{"x"}, want: action.TemplateWithName("weekly", "x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.classify(tt.template, tt.args)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if got != tt.want {
				t.Fatalf("classify() = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("unknown flag template", func(t *testing.T) {
		_, err := a.classify("ghost", nil)
		if !errors.Is(err, mdberr.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if err.Error() != "No template named `ghost`" {
			t.Fatalf("message = %q", err.Error())
		}
	})
}

func TestRootCreatesAndOpensNote(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	result := h.runJSON(t, "ideas").MustSucceed(t)
	want := h.ws.NotePath("ideas.md")
	if got := result.DataString("path"); got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
	h.ws.AssertNoteContent("ideas.md", "# ideas\n")
	if len(h.editor.opened) != 1 || h.editor.opened[0] != want {
		t.Fatalf("editor opened %v", h.editor.opened)
	}
}

func TestRootTemplateArgument(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	h.runJSON(t, "meeting").MustSucceed(t)
	h.ws.AssertNoteContent("standup.md", "## standup in notes\n")

	h.runJSON(t, "-t", "meeting", "retro").MustSucceed(t)
	h.ws.AssertNoteContent("retro.md", "## retro in notes\n")
}

func TestRootDefaultName(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	out, err := h.run(t)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
	h.ws.AssertNoteContent("inbox.md", "# inbox\n")
}

func TestRootUnknownTemplate(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	h.runJSON(t, "-t", "ghost", "x").MustFailWithCode(t, ErrInvalidInput)
	h.ws.AssertNoteNotExists("x.md")

	_, err := h.run(t, "-t", "ghost")
	if err == nil || !strings.Contains(err.Error(), "No template named `ghost`") {
		t.Fatalf("expected template error, got %v", err)
	}
}

func TestJSONErrorStillFails(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	_, err := h.run(t, "--json", "-t", "ghost")
	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
}

func TestNewOverwrites(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t).WithNote("ideas.md", "mine"))

	h.runJSON(t, "ideas").MustSucceed(t)
	h.ws.AssertNoteContent("ideas.md", "mine")

	h.runJSON(t, "new", "ideas").MustSucceed(t)
	h.ws.AssertNoteContent("ideas.md", "# ideas\n")
}

func TestAddListClean(t *testing.T) {
	ws := testutil.NewWorkspace(t).
		WithNote("a.md", "# Alpha\n").
		WithNote("b.md", "---\ntitle: Beta\n---\nbody\n")
	h := newHarness(t, ws)

	for _, name := range []string{"b", "a.md"} {
		h.runJSON(t, "add", name).MustSucceed(t)
	}
	h.ws.AssertTracked(h.ws.NotePath("a.md"))

	out, err := h.run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := h.ws.NotePath("a.md") + "\n" + h.ws.NotePath("b.md") + "\n"
	if out != want {
		t.Fatalf("list = %q, want %q", out, want)
	}

	out, err = h.run(t, "list", "--titles")
	if err != nil {
		t.Fatalf("list --titles: %v", err)
	}
	want = h.ws.NotePath("a.md") + "\tAlpha\n" + h.ws.NotePath("b.md") + "\tBeta\n"
	if out != want {
		t.Fatalf("list --titles = %q, want %q", out, want)
	}

	if err := os.Remove(h.ws.NotePath("a.md")); err != nil {
		t.Fatal(err)
	}
	result := h.runJSON(t, "clean").MustSucceed(t)
	if removed, _ := result.Data["removed"].(float64); removed != 1 {
		t.Fatalf("removed = %v, want 1", result.Data["removed"])
	}

	result = h.runJSON(t, "list").MustSucceed(t)
	notes, _ := result.Data["notes"].([]interface{})
	if len(notes) != 1 {
		t.Fatalf("notes = %v", result.Data["notes"])
	}
	if len(h.editor.opened) != 0 {
		t.Fatalf("add/list/clean must not open the editor, opened %v", h.editor.opened)
	}
}

func TestAddRequiresName(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	h.runJSON(t, "add").MustFailWithCode(t, ErrInvalidInput)
	h.runJSON(t, "add", "ghost").MustFailWithCode(t, ErrNotFound)
}

func TestTemplates(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	out, err := h.run(t, "templates")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	if out != "default\nmeeting\n" {
		t.Fatalf("templates = %q", out)
	}

	result := h.runJSON(t, "templates").MustSucceed(t)
	templates, _ := result.Data["templates"].([]interface{})
	if len(templates) != 2 {
		t.Fatalf("templates = %v", result.Data["templates"])
	}
	first, _ := templates[0].(map[string]interface{})
	if first["name"] != "text: inbox" || first["body"] != "inline" {
		t.Fatalf("first template = %v", first)
	}
}

func TestTemplatesShow(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t).WithTemplateBody("weekly", "# Week of $DATE\n"))

	out, err := h.run(t, "templates", "show", "meeting")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if out != "## $NAME in $PWD\n" {
		t.Fatalf("show meeting = %q", out)
	}

	result := h.runJSON(t, "templates", "show", "weekly").MustSucceed(t)
	if got := result.DataString("content"); got != "# Week of $DATE\n" {
		t.Fatalf("content = %q", got)
	}

	h.runJSON(t, "templates", "show", "ghost").MustFailWithCode(t, ErrNotFound)

	// A body file alone can be shown but not used to create notes.
	h.runJSON(t, "weekly").MustFailWithCode(t, ErrNotFound)
	h.runJSON(t, "-t", "weekly", "w03").MustFailWithCode(t, ErrNotFound)
	h.ws.AssertNoteNotExists("w03.md")
	if len(h.editor.opened) != 0 {
		t.Fatalf("editor opened %v", h.editor.opened)
	}
}

func TestInit(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))
	path := filepath.Join(h.ws.Root, "fresh", "config.toml")

	cmd := NewRootCmd(Options{Stderr: &h.stderr})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--json", "init"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	result := testutil.ParseCLIResult(t, out.String()).MustSucceed(t)
	if created, _ := result.Data["created"].(bool); !created {
		t.Fatalf("expected created, got %v", result.Data)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
}

func TestDebugVerbosity(t *testing.T) {
	h := newHarness(t, testutil.NewWorkspace(t))

	if _, err := h.run(t, "templates"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(h.stderr.String(), "config loaded") {
		t.Fatalf("info logs should be hidden by default:\n%s", h.stderr.String())
	}

	if _, err := h.run(t, "-dd", "templates"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.stderr.String(), "config loaded") {
		t.Fatalf("expected info logs with -dd, got:\n%s", h.stderr.String())
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{mdberr.NotFound("x"), ErrNotFound},
		{mdberr.InvalidInput("x"), ErrInvalidInput},
		{mdberr.IO(errors.New("disk"), "x"), ErrIO},
		{mdberr.ExternalProcess(errors.New("exit 1"), "x"), ErrExternalProcess},
		{fmt.Errorf("wrapped: %w", mdberr.NotFound("x")), ErrNotFound},
		{errors.New("failed to load config"), ErrConfigInvalid},
	}
	for _, tt := range tests {
		if got := codeFor(tt.err); got != tt.want {
			t.Errorf("codeFor(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestConfigErrorCodes(t *testing.T) {
	tests := []struct {
		label   string
		content string
		want    string
	}{
		{"malformed toml", "[config\n", ErrIO},
		{"duplicate template id", "[[templates]]\nid = \"a\"\n\n[[templates]]\nid = \"a\"\n", ErrConfigInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			h := newHarness(t, testutil.NewWorkspace(t))
			h.ws.WriteConfig(tt.content)
			h.runJSON(t, "templates").MustFailWithCode(t, tt.want)
		})
	}
}
