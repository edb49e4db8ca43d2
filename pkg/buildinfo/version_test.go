package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Get(); got.Version != "v1.2.3" || got.Commit != Commit || got.Date != Date {
		t.Errorf("Get() = %+v", got)
	}
	if !strings.HasPrefix(String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
