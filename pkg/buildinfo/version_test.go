package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.HasSuffix(tmpl, "\n") {
		t.Error("Template() should end with a newline")
	}
}

func TestServerHeader(t *testing.T) {
	if got, want := ServerHeader(), "qrgen/"+Version; got != want {
		t.Errorf("ServerHeader() = %q, want %q", got, want)
	}
}
