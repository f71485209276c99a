package agreements

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"msa-backend/internal/artifacts"
)

type links struct {
	View     string `json:"view"`
	PDF      string `json:"pdf"`
	Download string `json:"download"`
	DOCX     string `json:"docx"`
	History  string `json:"history"`
}

type submitResponse struct {
	Filename string `json:"filename"`
	Pages    int    `json:"pages,omitempty"`
	URLs     links  `json:"urls"`
}

type viewResponse struct {
	Filename string `json:"filename"`
	HasDOCX  bool   `json:"hasDocx"`
	URLs     links  `json:"urls"`
}

type historyResponse struct {
	Filename string                   `json:"filename"`
	Entries  []artifacts.HistoryEntry `json:"entries"`
}

// linksFor builds URLs relative to the group the request came in on.
func linksFor(c *gin.Context, filename string) links {
	base := groupPrefix(c.FullPath()) + "/agreements/" + url.PathEscape(filename)
	return links{
		View:     base + "/view",
		PDF:      base + "/pdf",
		Download: base + "/pdf/download",
		DOCX:     base + "/docx",
		History:  base + "/history",
	}
}

func groupPrefix(fullPath string) string {
	if idx := strings.Index(fullPath, "/agreements"); idx >= 0 {
		return fullPath[:idx]
	}
	return ""
}
