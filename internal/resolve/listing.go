package resolve

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/frankli0324/go-httpd/internal/errors"
)

const (
	listingHead = "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n" +
		"<title>Directory listing for %s</title>\n</head>\n" +
		"<body>\n<h1>Directory listing for %s</h1>\n<hr>\n<ul>\n"
	listingEntry = "<li><a href=\"%s\">%s</a></li>\n"
	listingTail  = "</ul>\n<hr>\n</body>\n</html>\n"
)

// listDirectory renders every entry of dir, "." and ".." first and the rest
// in name order. Links are reqPath joined with the entry name and are not
// percent-encoded, since request paths are never decoded.
func listDirectory(dir, reqPath string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ErrIOFailure.Wrap(err)
	}
	names := make([]string, 0, len(entries)+2)
	names = append(names, ".", "..")
	for _, e := range entries {
		names = append(names, e.Name())
	}

	var b bytes.Buffer
	title := html.EscapeString(reqPath)
	fmt.Fprintf(&b, listingHead, title, title)
	for _, name := range names {
		fmt.Fprintf(&b, listingEntry, html.EscapeString(href(reqPath, name)), html.EscapeString(name))
	}
	b.WriteString(listingTail)
	return b.Bytes(), nil
}

func href(reqPath, name string) string {
	if strings.HasSuffix(reqPath, "/") {
		return reqPath + name
	}
	return reqPath + "/" + name
}
