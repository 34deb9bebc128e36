// Package page owns a single navigation: fetch a document, parse it,
// extract and run its CSS and script, build the styled layout tree,
// and paint it to a flat display list. It is the orchestration layer
// the teacher's cmd/browser main() inlined directly into main; here it
// is pulled out into its own type so a CLI or a test can drive a
// navigation without duplicating the pipeline.
//
// Grounded on the teacher's cmd/browser/main.go pipeline and
// original_source's saba_core::renderer::page, which owns the same
// fetch -> parse -> style -> layout -> paint sequence for one Page.
package page

import (
	"os"
	"strings"

	"tinybrowser/constants"
	"tinybrowser/css"
	"tinybrowser/dom"
	"tinybrowser/html"
	"tinybrowser/httpclient"
	"tinybrowser/js"
	"tinybrowser/layout"
	"tinybrowser/log"
	"tinybrowser/urlparse"
)

// Page is the result of one navigation.
type Page struct {
	URL         string
	Document    *dom.Node
	Stylesheet  *css.Stylesheet
	LayoutRoot  *layout.Object
	DisplayList []layout.DisplayItem
}

// Navigate fetches target (an "http://..." URL or a local file path),
// runs it through the full pipeline, and returns the resulting Page.
// HTTP fetch errors and local file read errors are returned verbatim;
// everything past that point (parse, style, layout, script execution)
// recovers from parse-time problems internally per the ambient error
// model and only panics on a genuine runtime.Fault.
func Navigate(target string) (*Page, error) {
	html, err := fetch(target)
	if err != nil {
		return nil, err
	}
	return build(target, html), nil
}

func fetch(target string) (string, error) {
	if strings.HasPrefix(target, "http://") {
		u, err := urlparse.Parse(target)
		if err != nil {
			return "", err
		}
		log.Infof("page: fetching %s", u.String())
		resp, err := httpclient.New().Get(u)
		if err != nil {
			return "", err
		}
		return resp.Body, nil
	}

	log.Infof("page: reading local file %s", target)
	content, err := os.ReadFile(target)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func build(url, source string) *Page {
	document := html.Parse(source)

	sheet := extractStylesheet(document)
	runScript(document)

	body := findByTag(document, "body")
	root := layout.Build(body, sheet)

	log.Debugf("page: laying out %q", url)
	layout.ComputeSize(root, constants.ContentAreaWidth)
	layout.ComputePosition(root, layout.Point{X: constants.WindowPadding, Y: constants.WindowPadding})
	items := layout.Paint(root)

	return &Page{
		URL:         url,
		Document:    document,
		Stylesheet:  sheet,
		LayoutRoot:  root,
		DisplayList: items,
	}
}

// extractStylesheet concatenates the text content of every <style>
// element in document order and parses the result as one stylesheet —
// the teacher's single embedded <style> assumption, generalized to
// "all of them, in order" so later rules still win per the cascade's
// rule-order precedence.
func extractStylesheet(document *dom.Node) *css.Stylesheet {
	var b strings.Builder
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.ElementNode && n.Tag == "style" {
			b.WriteString(textContent(n))
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(document)
	return css.Parse(b.String())
}

// runScript runs the first <script> element found by depth-first
// search, once, through a fresh Interpreter. Every other <script>
// element in the document is ignored.
func runScript(document *dom.Node) {
	script := findByTag(document, "script")
	if script == nil {
		return
	}
	src := textContent(script)
	log.Debugf("page: running script (%d bytes)", len(src))
	js.NewInterpreter(document).Run(js.Parse(src))
}

func textContent(n *dom.Node) string {
	var b strings.Builder
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		if n.Type == dom.TextNode {
			b.WriteString(n.Text)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func findByTag(n *dom.Node, tag string) *dom.Node {
	if n.Type == dom.ElementNode && n.Tag == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
