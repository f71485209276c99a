package agreements

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"msa-backend/internal/artifacts"
	"msa-backend/internal/convert"
	"msa-backend/internal/forms"
	"msa-backend/internal/sessions"
	"msa-backend/internal/signatures"
)

func authedState() *sessions.State {
	st := sessions.New("sess-1")
	st.SetUser(sessions.User{ID: "u-1", Username: "jane", Role: "BUSINESS_DEVELOPMENT_USER"}, map[string]string{"token": "abc"})
	st.Modified = false
	return st
}

func TestSubmitGeneratesAgreementWithHistory(t *testing.T) {
	env := newTestEnv(t)
	st := authedState()
	uri := signatureURI(t)

	res, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{Data: uri},
		Customer: SignatureInput{Data: uri},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !strings.HasPrefix(res.Filename, "MSA_Acme_Ltd_") {
		t.Fatalf("unexpected filename %q", res.Filename)
	}

	if len(st.Documents) != 1 || len(st.Renditions) != 1 {
		t.Fatalf("expected one artifact, got docs=%d pdfs=%d", len(st.Documents), len(st.Renditions))
	}
	artifact, ok := env.svc.Registry.Artifact(st, res.Filename)
	if !ok || artifact.DocumentPath == "" || artifact.RenditionPath == "" {
		t.Fatalf("expected both paths recorded, got %+v", artifact)
	}
	if len(st.Signatures) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(st.Signatures))
	}

	entries, ok := env.svc.Registry.History(st, res.Filename)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected exactly one history entry, got %d (ok=%v)", len(entries), ok)
	}
	entry := entries[0]
	if !entry.Changes.SignaturesAdded.Chervic || !entry.Changes.SignaturesAdded.Customer {
		t.Fatalf("expected both signatures attached, got %+v", entry.Changes.SignaturesAdded)
	}
	if entry.Username != "jane" {
		t.Fatalf("expected username jane, got %q", entry.Username)
	}
	if entry.Changes.FieldsUpdated["name"] != "Acme Ltd" {
		t.Fatalf("expected fields recorded, got %v", entry.Changes.FieldsUpdated)
	}
	if _, ok := entry.Changes.FieldsUpdated["chervic_signature"]; ok {
		t.Fatalf("signature paths must not be recorded as fields")
	}

	if st.FormData["billing_email"] != "billing@acme.test" {
		t.Fatalf("expected form data cached, got %v", st.FormData)
	}
	if !st.Modified {
		t.Fatalf("expected session marked modified")
	}
}

func TestSubmitBlankRequiredFieldStopsEarly(t *testing.T) {
	env := newTestEnv(t)
	st := authedState()
	values := validValues()
	values.Set("billing_email", "   ")

	_, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   values,
		Chervic:  SignatureInput{Data: signatureURI(t)},
		Customer: SignatureInput{Data: signatureURI(t)},
	})
	var verr *forms.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "billing_email" || verr.Message != "Billing Email is required." {
		t.Fatalf("unexpected validation error %+v", verr)
	}
	if n := countFiles(t, env.roots.sigs); n != 0 {
		t.Fatalf("expected no signature stored, found %d files", n)
	}
	if env.assembler.calls != 0 || env.converter.calls != 0 {
		t.Fatalf("expected no assembly or conversion")
	}
	if st.FormData["name"] != "Acme Ltd" {
		t.Fatalf("expected submitted values cached on failure, got %v", st.FormData)
	}
}

func TestSubmitInvalidDate(t *testing.T) {
	env := newTestEnv(t)
	values := validValues()
	values.Set("chervic_date", "02/01/2024")

	_, err := env.svc.Submit(context.Background(), authedState(), Submission{Values: values})
	var verr *forms.ValidationError
	if !errors.As(err, &verr) || verr.Field != "chervic_date" {
		t.Fatalf("expected chervic_date validation error, got %v", err)
	}
	if !strings.HasPrefix(verr.Message, "Invalid date format for") {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestSubmitSignatureWithoutCommaHalts(t *testing.T) {
	env := newTestEnv(t)
	st := authedState()

	_, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{Data: "data:image/png;base64iVBORw0KGgo"},
		Customer: SignatureInput{Data: signatureURI(t)},
	})
	if !errors.Is(err, signatures.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if env.assembler.calls != 0 {
		t.Fatalf("expected no document assembly")
	}
	if len(st.Documents) != 0 {
		t.Fatalf("expected no artifact")
	}
}

func TestSubmitMissingSignature(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(context.Background(), authedState(), Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{Data: signatureURI(t)},
		Customer: SignatureInput{FileName: "sig.gif", File: strings.NewReader("GIF89a")},
	})
	var verr *forms.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Customer signature is required." {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestSubmitUploadedSignatureFile(t *testing.T) {
	env := newTestEnv(t)
	st := authedState()
	_, data, err := forms.DecodeDataURI(signatureURI(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	res, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{FileName: "chervic.PNG", File: strings.NewReader(string(data))},
		Customer: SignatureInput{Data: signatureURI(t)},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, ok := env.svc.Registry.Lookup(st, artifacts.KindRendition, res.Filename); !ok {
		t.Fatalf("expected rendition recorded")
	}
}

func TestSubmitConverterFailure(t *testing.T) {
	env := newTestEnv(t)
	env.converter.fail = true
	st := authedState()

	_, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{Data: signatureURI(t)},
		Customer: SignatureInput{Data: signatureURI(t)},
	})
	var convErr *convert.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if !strings.Contains(convErr.Stderr, "could not be loaded") {
		t.Fatalf("expected captured stderr, got %q", convErr.Stderr)
	}
	if n := countFiles(t, env.roots.docs); n != 0 {
		t.Fatalf("expected working document deleted, found %d files", n)
	}
	if len(st.Documents) != 0 || len(st.Renditions) != 0 {
		t.Fatalf("expected no artifact recorded")
	}
	if len(st.History) != 0 {
		t.Fatalf("expected no history on failure")
	}
}

func TestSubmitThenTeardown(t *testing.T) {
	env := newTestEnv(t)
	st := authedState()
	uri := signatureURI(t)

	res, err := env.svc.Submit(context.Background(), st, Submission{
		Values:   validValues(),
		Chervic:  SignatureInput{Data: uri},
		Customer: SignatureInput{Data: uri},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	pdfPath, _ := env.svc.Registry.Lookup(st, artifacts.KindRendition, res.Filename)
	snapshot := *st

	env.svc.Registry.Teardown(context.Background(), st)

	for _, root := range []string{env.roots.docs, env.roots.pdfs, env.roots.sigs, env.roots.hist} {
		if n := countFiles(t, root); n != 0 {
			t.Fatalf("expected %s empty after teardown, found %d files", root, n)
		}
	}
	if _, err := os.Stat(pdfPath); !os.IsNotExist(err) {
		t.Fatalf("expected pdf removed, stat err=%v", err)
	}
	if _, ok := env.svc.Registry.Lookup(&snapshot, artifacts.KindRendition, res.Filename); ok {
		t.Fatalf("expected lookup against old records to miss")
	}
	if _, ok := env.svc.Registry.Lookup(st, artifacts.KindRendition, res.Filename); ok {
		t.Fatalf("expected lookup on cleared state to miss")
	}
	if !st.Destroyed {
		t.Fatalf("expected state destroyed")
	}
}
