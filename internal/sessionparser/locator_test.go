package sessionparser

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, doc string) *Node {
	t.Helper()
	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return root
}

func TestLocateFindsNestedNode(t *testing.T) {
	root := mustParse(t, sampleSession)

	list := Locate(root, "ColorControlPointList")
	if list == nil {
		t.Fatal("ColorControlPointList not found")
	}
	if len(list.Children) != 1 || list.Children[0].EffectiveName() != "ColorControlPoint" {
		t.Errorf("unexpected subtree: %+v", list.Children)
	}
}

func TestLocatePreOrderFirstMatchWins(t *testing.T) {
	doc := `<root>
  <Object name="outer">
    <Object name="target" id="deep"/>
  </Object>
  <Object name="target" id="shallow"/>
</root>`
	root := mustParse(t, doc)

	got := Locate(root, "target")
	if got == nil {
		t.Fatal("target not found")
	}
	if id, _ := got.Attr("id"); id != "deep" {
		t.Errorf("matched id %q, want the first node in pre-order (deep)", id)
	}
}

func TestLocateMatchesRootAndText(t *testing.T) {
	root := mustParse(t, `<Object name="target"><Object name="target"/></Object>`)
	if got := Locate(root, "target"); got != root {
		t.Error("root itself should be matched first")
	}

	byText := mustParse(t, `<list><entry>ColorControlPointList</entry></list>`)
	got := Locate(byText, "ColorControlPointList")
	if got == nil || got.Tag != "entry" {
		t.Errorf("text-named node not matched: %+v", got)
	}
}

func TestLocateNotFound(t *testing.T) {
	root := mustParse(t, `<Object name="VisIt"><Field name="x">1</Field></Object>`)
	if got := Locate(root, "ColorControlPointList"); got != nil {
		t.Errorf("Locate() = %+v, want nil", got)
	}
}

func TestDump(t *testing.T) {
	root := mustParse(t, `<Object name="list"><Object name="point"><Field name="colors">1 2 3 4</Field></Object></Object>`)

	var b strings.Builder
	if err := Dump(&b, root); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	want := "Object: list\n" +
		"    Object: point\n" +
		"        Field: colors\n"
	if b.String() != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", b.String(), want)
	}
}
