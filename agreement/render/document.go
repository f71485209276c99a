package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"msa-backend/agreement/clauses"
)

const (
	// Signature images are 2 inches wide. 914400 EMU per inch.
	signatureWidthEMU = 2 * 914400
	cellWidthTwips    = 4680
	firstImageRelID   = 10
)

type embeddedImage struct {
	Index  int
	Format string
	Data   []byte
	Width  int64
	Height int64
}

func (img embeddedImage) RelID() string {
	return fmt.Sprintf("rId%d", firstImageRelID+img.Index)
}

func (img embeddedImage) Target() string {
	return fmt.Sprintf("media/image%d.%s", img.Index+1, img.Format)
}

type signatureTable struct {
	Customer      []byte
	CustomerLines []string
	Chervic       []byte
	ChervicLines  []string
}

type documentWriter struct {
	buf    strings.Builder
	images []embeddedImage
}

func newDocumentWriter() *documentWriter {
	w := &documentWriter{}
	w.buf.WriteString(xml.Header)
	w.buf.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `" xmlns:wp="` + wpNamespace + `" xmlns:a="` + drawingNamespace + `" xmlns:pic="` + pictureNamespace + `"><w:body>`)
	return w
}

func (w *documentWriter) cover(companyName string) {
	w.paragraph(paragraphProps{Style: "Heading1", Center: true}, runProps{Size: 48}, single("Master Services Agreement"))
	w.paragraph(paragraphProps{Style: "Heading2", Center: true}, runProps{Size: 28}, single("Between"))
	w.paragraph(paragraphProps{Style: "Heading3", Center: true}, runProps{Size: 28, Bold: true}, single(companyName))
	w.paragraph(paragraphProps{Center: true}, runProps{Size: 24, Bold: true}, single("And"))
	w.paragraph(paragraphProps{Style: "Heading3", Center: true}, runProps{Size: 28, Bold: true}, single(clauses.ProviderName))
	w.buf.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

func (w *documentWriter) block(block clauses.Block, text string) {
	props := paragraphProps{}
	switch block.Kind {
	case clauses.Heading:
		props.Style = fmt.Sprintf("Heading%d", clampLevel(block.Level))
		props.Center = block.Align == clauses.Center
	default:
		props.Center = block.Align == clauses.Center
		props.Justify = block.Align == clauses.Justify
	}
	w.paragraph(props, runProps{}, strings.Split(text, "\n"))
}

func (w *documentWriter) signatureTable(t signatureTable) error {
	w.buf.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/><w:tblLayout w:type="autofit"/></w:tblPr>`)
	fmt.Fprintf(&w.buf, `<w:tblGrid><w:gridCol w:w="%d"/><w:gridCol w:w="%d"/></w:tblGrid><w:tr>`, cellWidthTwips, cellWidthTwips)
	if err := w.signatureCell(t.Customer, t.CustomerLines); err != nil {
		return err
	}
	if err := w.signatureCell(t.Chervic, t.ChervicLines); err != nil {
		return err
	}
	// A body may not end with a table.
	w.buf.WriteString(`</w:tr></w:tbl><w:p/>`)
	return nil
}

// signatureCell writes one table cell. A side without an image keeps an
// empty paragraph because a cell must contain one.
func (w *documentWriter) signatureCell(data []byte, lines []string) error {
	fmt.Fprintf(&w.buf, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr>`, cellWidthTwips)
	if data == nil {
		w.buf.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr></w:p></w:tc>`)
		return nil
	}
	img, err := w.addImage(data)
	if err != nil {
		return err
	}
	w.buf.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r>`)
	writeLines(&w.buf, lines)
	w.buf.WriteString(`<w:br/>`)
	w.drawing(img)
	w.buf.WriteString(`</w:r></w:p></w:tc>`)
	return nil
}

func (w *documentWriter) addImage(data []byte) (embeddedImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return embeddedImage{}, fmt.Errorf("embed signature image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return embeddedImage{}, fmt.Errorf("embed signature image: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	img := embeddedImage{
		Index:  len(w.images),
		Format: format,
		Data:   data,
		Width:  signatureWidthEMU,
		Height: signatureWidthEMU * int64(cfg.Height) / int64(cfg.Width),
	}
	w.images = append(w.images, img)
	return img, nil
}

func (w *documentWriter) drawing(img embeddedImage) {
	id := img.Index + 1
	fmt.Fprintf(&w.buf, `<w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0"><wp:extent cx="%d" cy="%d"/><wp:docPr id="%d" name="Signature %d"/>`, img.Width, img.Height, id, id)
	w.buf.WriteString(`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`)
	fmt.Fprintf(&w.buf, `<a:graphic><a:graphicData uri="%s"><pic:pic><pic:nvPicPr><pic:cNvPr id="%d" name="signature%d.%s"/><pic:cNvPicPr/></pic:nvPicPr>`, pictureNamespace, id, id, img.Format)
	fmt.Fprintf(&w.buf, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, img.RelID())
	fmt.Fprintf(&w.buf, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`, img.Width, img.Height)
	w.buf.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing>`)
}

func (w *documentWriter) finish() string {
	w.buf.WriteString(`<w:sectPr><w:footerReference w:type="default" r:id="` + footerRelID + `"/>`)
	w.buf.WriteString(`<w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)
	w.buf.WriteString(`</w:body></w:document>`)
	return w.buf.String()
}

type paragraphProps struct {
	Style   string
	Center  bool
	Justify bool
}

type runProps struct {
	Bold bool
	Size int // half-points
}

func (w *documentWriter) paragraph(p paragraphProps, r runProps, lines []string) {
	w.buf.WriteString(`<w:p>`)
	if p.Style != "" || p.Center || p.Justify {
		w.buf.WriteString(`<w:pPr>`)
		if p.Style != "" {
			fmt.Fprintf(&w.buf, `<w:pStyle w:val="%s"/>`, p.Style)
		}
		switch {
		case p.Center:
			w.buf.WriteString(`<w:jc w:val="center"/>`)
		case p.Justify:
			w.buf.WriteString(`<w:jc w:val="both"/>`)
		}
		w.buf.WriteString(`</w:pPr>`)
	}
	w.buf.WriteString(`<w:r>`)
	if r.Bold || r.Size > 0 {
		w.buf.WriteString(`<w:rPr>`)
		if r.Bold {
			w.buf.WriteString(`<w:b/>`)
		}
		if r.Size > 0 {
			fmt.Fprintf(&w.buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
		}
		w.buf.WriteString(`</w:rPr>`)
	}
	writeLines(&w.buf, lines)
	w.buf.WriteString(`</w:r></w:p>`)
}

func writeLines(buf *strings.Builder, lines []string) {
	for i, line := range lines {
		if i > 0 {
			buf.WriteString(`<w:br/>`)
		}
		buf.WriteString(`<w:t xml:space="preserve">`)
		_ = xml.EscapeText(buf, []byte(line))
		buf.WriteString(`</w:t>`)
	}
}

func single(text string) []string {
	return []string{text}
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}
