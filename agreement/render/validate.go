package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var tokenPattern = regexp.MustCompile(`{{[^}]+}}`)

func findRemainingToken(text string) string {
	if match := tokenPattern.FindString(text); match != "" {
		return match
	}
	if idx := strings.Index(text, "{{"); idx != -1 {
		end := idx + 40
		if end > len(text) {
			end = len(text)
		}
		return text[idx:end]
	}
	if idx := strings.Index(text, "}}"); idx != -1 {
		start := idx - 40
		if start < 0 {
			start = 0
		}
		return text[start : idx+2]
	}
	return ""
}

// validateDocumentXMLStrict checks that the generated part is well formed
// and that every prefixed name resolves to a namespace this package writes.
// encoding/xml leaves an undeclared prefix in Name.Space as-is.
func validateDocumentXMLStrict(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if err := checkNamespace(start.Name, "element", xmlText); err != nil {
			return err
		}
		for _, attr := range start.Attr {
			if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
				continue
			}
			if err := checkNamespace(attr.Name, "attribute", xmlText); err != nil {
				return err
			}
		}
	}
}

func checkNamespace(name xml.Name, kind, xmlText string) error {
	if name.Space == "" || name.Space == xmlNamespace {
		return nil
	}
	if _, ok := knownNamespacePrefixes[name.Space]; ok {
		return nil
	}
	return fmt.Errorf("document.xml missing root namespace for %s %s:%s\n%s", kind, name.Space, name.Local, firstLines(xmlText, 5))
}

var knownNamespacePrefixes = map[string]string{
	wmlNamespace:     "w",
	relNamespace:     "r",
	wpNamespace:      "wp",
	drawingNamespace: "a",
	pictureNamespace: "pic",
}

func firstLines(text string, count int) string {
	if count <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n")
}
