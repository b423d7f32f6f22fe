package htmlutil_test

import (
	"testing"

	"tvscript/internal/htmlutil"
)

const page = `
<html><body>
<table id="episodes">
  <tr><td><a href="/ep/1">Pilot</a></td></tr>
  <tr><td><a href="/ep/2">Finale</a></td></tr>
</table>
<div class="line"><b>Alice</b>: Hi there</div>
<div class="line"><b>Bob</b>: Hello</div>
</body></html>`

func TestFindAll(t *testing.T) {
	doc, err := htmlutil.Parse(page)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	anchors := htmlutil.FindAll(doc, "a")
	if len(anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d", len(anchors))
	}
	if got := htmlutil.Attr(anchors[0], "href"); got != "/ep/1" {
		t.Errorf("first href = %q, want /ep/1", got)
	}
	if got := htmlutil.Text(anchors[1]); got != "Finale" {
		t.Errorf("second anchor text = %q, want Finale", got)
	}
}

func TestFindAllWithAttr(t *testing.T) {
	doc, err := htmlutil.Parse(page)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	lines := htmlutil.FindAllWithAttr(doc, "div", "class", "line")
	if len(lines) != 2 {
		t.Fatalf("expected 2 line divs, got %d", len(lines))
	}
	if got := htmlutil.Text(lines[0]); got != "Alice: Hi there" {
		t.Errorf("line text = %q, want %q", got, "Alice: Hi there")
	}
}

func TestTextOfNestedNodes(t *testing.T) {
	doc, err := htmlutil.Parse(`<p>  one <i>two</i> three </p>`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ps := htmlutil.FindAll(doc, "p")
	if len(ps) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(ps))
	}
	if got := htmlutil.Text(ps[0]); got != "one two three" {
		t.Errorf("text = %q, want %q", got, "one two three")
	}
}

func TestAttrMissing(t *testing.T) {
	doc, err := htmlutil.Parse(`<a>link</a>`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	anchors := htmlutil.FindAll(doc, "a")
	if got := htmlutil.Attr(anchors[0], "href"); got != "" {
		t.Errorf("missing attr = %q, want empty", got)
	}
}
