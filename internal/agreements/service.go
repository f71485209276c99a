// Package agreements runs a form submission through signatures, assembly,
// conversion and edit history, and serves the resulting files.
package agreements

import (
	"context"
	"io"
	"strings"

	"msa-backend/agreement/model"
	"msa-backend/internal/artifacts"
	"msa-backend/internal/convert"
	"msa-backend/internal/forms"
	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/telemetry"
	"msa-backend/internal/signatures"
)

// Generator produces the PDF rendition for validated content.
type Generator interface {
	Generate(ctx context.Context, st *sessions.State, content model.ContentMapping) (convert.Result, error)
}

// SignatureInput is one party's signature as submitted: an inline data URI
// or an uploaded file. Data wins when it looks like an image data URI.
type SignatureInput struct {
	Data     string
	FileName string
	File     io.Reader
}

// Submission is a parsed form post.
type Submission struct {
	Values   forms.Getter
	Chervic  SignatureInput
	Customer SignatureInput
}

type Service struct {
	Signatures *signatures.Store
	Generator  Generator
	Registry   *artifacts.Registry
}

func NewService(sigs *signatures.Store, gen Generator, reg *artifacts.Registry) *Service {
	return &Service{Signatures: sigs, Generator: gen, Registry: reg}
}

// Submit validates the form before touching any file, stores both
// signatures, generates the agreement and appends its first history entry.
// The sanitized input is cached on the session even when a step fails.
func (s *Service) Submit(ctx context.Context, st *sessions.State, sub Submission) (convert.Result, error) {
	content, err := forms.Validate(sub.Values)
	if err != nil {
		s.cacheForm(st, forms.Collect(sub.Values))
		return convert.Result{}, err
	}

	networkID := forms.Sanitize(sub.Values.Get(model.FieldAribaNetworkID))
	if networkID == "" {
		networkID = st.NetworkID
	}
	if networkID != "" {
		content[model.FieldAribaNetworkID] = networkID
		st.SetNetworkID(networkID)
	}

	cached := content.Subset(model.RequiredFields, model.OptionalFields, []string{model.FieldAribaNetworkID})

	chervic, err := s.storeSignature(ctx, st, signatures.RoleChervic, sub.Chervic)
	if err != nil {
		s.cacheForm(st, cached)
		return convert.Result{}, err
	}
	content[model.FieldChervicSignature] = chervic

	customer, err := s.storeSignature(ctx, st, signatures.RoleCustomer, sub.Customer)
	if err != nil {
		s.cacheForm(st, cached)
		return convert.Result{}, err
	}
	content[model.FieldCustomerSignature] = customer

	s.cacheForm(st, cached)

	result, err := s.Generator.Generate(ctx, st, content)
	if err != nil {
		return convert.Result{}, err
	}

	username := ""
	if st.User != nil {
		username = st.User.Username
	}
	s.Registry.AppendHistory(ctx, st, result.Filename, username, artifacts.Changes{
		FieldsUpdated: content.Subset(model.RequiredFields, model.OptionalFields),
		SignaturesAdded: artifacts.SignaturesAdded{
			Chervic:  content.HasChervicSignature(),
			Customer: content.HasCustomerSignature(),
		},
	})
	telemetry.Info("agreement.generated", map[string]any{
		"artifact": result.Filename,
		"session":  st.ID,
		"username": username,
	})
	return result, nil
}

// storeSignature returns the stored file's path.
func (s *Service) storeSignature(ctx context.Context, st *sessions.State, role signatures.Role, in SignatureInput) (string, error) {
	var (
		name string
		err  error
	)
	switch {
	case forms.IsDataURI(in.Data):
		name, err = s.Signatures.SaveInline(ctx, st, role, in.Data)
	case in.File != nil && forms.AllowedImageExtension(in.FileName):
		name, err = s.Signatures.SaveUpload(ctx, st, role, in.FileName, in.File)
	default:
		return "", &forms.ValidationError{
			Field:   string(role) + "_signature",
			Message: role.Label() + " signature is required.",
		}
	}
	if err != nil {
		return "", err
	}
	path, ok := s.Signatures.Path(st, name)
	if !ok {
		return "", &forms.ValidationError{
			Field:   string(role) + "_signature",
			Message: "Failed to process " + role.Label() + " signature.",
		}
	}
	return path, nil
}

func (s *Service) cacheForm(st *sessions.State, values map[string]string) {
	merged := make(map[string]string, len(st.FormData)+len(values))
	for k, v := range st.FormData {
		merged[k] = v
	}
	for k, v := range values {
		if strings.TrimSpace(v) != "" {
			merged[k] = v
		}
	}
	st.SetFormData(merged)
}
