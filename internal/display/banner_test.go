package display

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderBannerKeepsEveryLine(t *testing.T) {
	out := RenderBanner()
	if !utf8.ValidString(out) {
		t.Fatal("banner output must stay valid UTF-8")
	}
	for _, line := range strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n") {
		if !strings.Contains(out, line) {
			t.Fatalf("banner output missing line %q", line)
		}
	}
}
