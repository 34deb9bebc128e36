// Command gobrowser drives one navigation — fetch, parse, style, layout,
// paint — against a URL or local file, and dumps the DOM tree, the
// embedded stylesheet's rule count, the layout tree, and the resulting
// display list.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tinybrowser/constants"
	"tinybrowser/dom"
	"tinybrowser/internal/paintref"
	"tinybrowser/layout"
	"tinybrowser/log"
	"tinybrowser/page"
)

func main() {
	pngOut := flag.String("png", "", "rasterize the display list to this PNG path instead of dumping text")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: gobrowser [-png out.png] <url-or-html-file>")
		os.Exit(1)
	}

	log.SetLevel(log.InfoLevel)

	target := flag.Arg(0)
	p, err := page.Navigate(target)
	if err != nil {
		fmt.Printf("Error navigating to %s: %v\n", target, err)
		os.Exit(1)
	}

	if *pngOut != "" {
		canvas := paintref.NewCanvas(constants.WindowWidth, windowHeight(p.LayoutRoot))
		canvas.Paint(p.DisplayList)
		if err := canvas.SavePNG(*pngOut); err != nil {
			fmt.Printf("Error saving %s: %v\n", *pngOut, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *pngOut)
		return
	}

	fmt.Println("=== DOM Tree ===")
	printDOMTree(p.Document, 0)

	fmt.Println("\n=== Stylesheet ===")
	fmt.Printf("%d rule(s)\n", len(p.Stylesheet.Rules))

	fmt.Println("\n=== Layout Tree ===")
	printLayoutTree(p.LayoutRoot, 0)

	fmt.Println("\n=== Display List ===")
	printDisplayList(p.DisplayList)
}

// windowHeight sizes the PNG canvas to the content that was actually
// laid out, padded for the window margin, rather than a fixed guess.
func windowHeight(root *layout.Object) int {
	if root == nil {
		return int(constants.WindowPadding * 2)
	}
	return int(root.Point.Y+root.Size.H) + int(constants.WindowPadding)
}

func printDOMTree(node *dom.Node, indent int) {
	if node == nil {
		return
	}
	prefix := strings.Repeat("  ", indent)

	switch node.Type {
	case dom.DocumentNode:
		fmt.Printf("%s[Document]\n", prefix)
	case dom.ElementNode:
		attrs := ""
		if id := node.GetAttribute("id"); id != "" {
			attrs += fmt.Sprintf(" id=%q", id)
		}
		if class := node.GetAttribute("class"); class != "" {
			attrs += fmt.Sprintf(" class=%q", class)
		}
		fmt.Printf("%s<%s%s>\n", prefix, node.Tag, attrs)
	case dom.TextNode:
		text := strings.TrimSpace(node.Text)
		if text != "" {
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			fmt.Printf("%s%q\n", prefix, text)
		}
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		printDOMTree(c, indent+1)
	}
}

func printLayoutTree(o *layout.Object, indent int) {
	if o == nil {
		return
	}
	prefix := strings.Repeat("  ", indent)

	kindName := "block"
	switch o.Kind {
	case layout.Inline:
		kindName = "inline"
	case layout.Text:
		kindName = "text"
	}

	tag := ""
	if o.Node != nil {
		tag = o.Node.Tag
	}

	fmt.Printf("%s[%s] <%s> x=%d y=%d w=%d h=%d\n",
		prefix, kindName, tag, o.Point.X, o.Point.Y, o.Size.W, o.Size.H)

	for c := o.FirstChild; c != nil; c = c.NextSibling {
		printLayoutTree(c, indent+1)
	}
}

func printDisplayList(items []layout.DisplayItem) {
	for _, item := range items {
		switch item.Kind {
		case layout.RectItem:
			fmt.Printf("rect  x=%d y=%d w=%d h=%d color=%+v\n",
				item.Point.X, item.Point.Y, item.Size.W, item.Size.H, item.Style.BackgroundColor)
		case layout.TextItem:
			fmt.Printf("text  x=%d y=%d %q\n", item.Point.X, item.Point.Y, item.Text)
		}
	}
}
