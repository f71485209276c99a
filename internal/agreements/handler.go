package agreements

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"msa-backend/agreement/render"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/convert"
	"msa-backend/internal/forms"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/server/middleware"
	"msa-backend/internal/shared/server/respond"
	"msa-backend/internal/shared/util"
	"msa-backend/internal/signatures"
)

const (
	maxSubmissionSize = 20 << 20 // 20MB
	maxMemory         = 8 << 20

	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches agreement routes to an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/agreements", h.submit)
	rg.GET("/agreements/:filename/view", h.view)
	rg.GET("/agreements/:filename/pdf", h.servePDF)
	rg.GET("/agreements/:filename/pdf/download", h.downloadPDF)
	rg.GET("/agreements/:filename/docx", h.downloadDOCX)
	rg.GET("/agreements/:filename/history", h.history)
}

func (h *Handler) submit(c *gin.Context) {
	st := sessions.FromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionSize)

	if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form body", nil)
			return
		}
		if err := c.Request.ParseForm(); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form body", nil)
			return
		}
	}
	values := c.Request.PostForm

	chervic, closeChervic := signatureInput(c, values, "chervic_signature_data", "chervic_signature")
	defer closeChervic()
	customer, closeCustomer := signatureInput(c, values, "contact_person_signature_data", "contact_person_signature")
	defer closeCustomer()

	result, err := h.Svc.Submit(c.Request.Context(), st, Submission{
		Values:   values,
		Chervic:  chervic,
		Customer: customer,
	})
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	middleware.SetArtifact(c, result.Filename)
	respond.Created(c, submitResponse{
		Filename: result.Filename,
		Pages:    result.Artifact.Pages,
		URLs:     linksFor(c, result.Filename),
	})
}

func signatureInput(c *gin.Context, values url.Values, dataField, fileField string) (SignatureInput, func()) {
	in := SignatureInput{Data: values.Get(dataField)}
	file, header, err := c.Request.FormFile(fileField)
	if err != nil {
		return in, func() {}
	}
	in.File = file
	in.FileName = header.Filename
	return in, func() { closeQuietly(file) }
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}

func writeSubmitError(c *gin.Context, err error) {
	var validation *forms.ValidationError
	var conversion *convert.ConversionError
	switch {
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "validation_error", validation.Message, gin.H{"field": validation.Field})
	case errors.Is(err, signatures.ErrInvalidSignature):
		respond.Error(c, http.StatusBadRequest, "signature_error", "signature could not be processed", nil)
	case errors.Is(err, render.ErrSignatureNotFound):
		respond.Error(c, http.StatusBadRequest, "signature_error", "signature file not found", nil)
	case errors.As(err, &conversion):
		respond.Error(c, http.StatusInternalServerError, "conversion_failed", "Error generating agreement", gin.H{"stage": conversion.Stage})
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error generating agreement", nil)
	}
}

func (h *Handler) view(c *gin.Context) {
	st := sessions.FromContext(c)
	filename := c.Param("filename")
	middleware.SetArtifact(c, filename)

	artifact, ok := h.Svc.Registry.Artifact(st, filename)
	if !ok {
		respond.NotFound(c, "PDF not found.")
		return
	}
	respond.OK(c, viewResponse{
		Filename: artifact.Filename,
		HasDOCX:  artifact.DocumentPath != "",
		URLs:     linksFor(c, artifact.Filename),
	})
}

func (h *Handler) servePDF(c *gin.Context) {
	h.sendFile(c, artifacts.KindRendition, mimePDF, false, "PDF not found.", nil)
}

func (h *Handler) downloadPDF(c *gin.Context) {
	h.sendFile(c, artifacts.KindRendition, mimePDF, true, "PDF not found.", nil)
}

func (h *Handler) downloadDOCX(c *gin.Context) {
	rename := func(name string) string { return util.ReplaceExt(name, ".docx") }
	h.sendFile(c, artifacts.KindDocument, mimeDOCX, true, "Document not found.", rename)
}

func (h *Handler) sendFile(c *gin.Context, kind artifacts.Kind, mime string, attachment bool, missing string, rename func(string) string) {
	st := sessions.FromContext(c)
	filename := c.Param("filename")
	middleware.SetArtifact(c, filename)

	path, ok := h.Svc.Registry.Lookup(st, kind, filename)
	if !ok {
		respond.NotFound(c, missing)
		return
	}
	downloadName := filename
	if rename != nil {
		downloadName = rename(filename)
	}
	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	c.Header("Content-Type", mime)
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, downloadName))
	c.File(path)
}

func (h *Handler) history(c *gin.Context) {
	st := sessions.FromContext(c)
	filename := c.Param("filename")
	middleware.SetArtifact(c, filename)

	entries, ok := h.Svc.Registry.History(st, filename)
	if !ok {
		respond.NotFound(c, "History not found.")
		return
	}
	if entries == nil {
		entries = []artifacts.HistoryEntry{}
	}
	respond.OK(c, historyResponse{Filename: filename, Entries: entries})
}
