package artifacts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"msa-backend/internal/sessions"
	"msa-backend/internal/shared/storage/object/local"
)

type testRoots struct {
	docs, pdfs, sigs, hist string
}

func newTestRegistry(t *testing.T) (*Registry, testRoots) {
	t.Helper()
	base := t.TempDir()
	roots := testRoots{
		docs: filepath.Join(base, "temp_docx"),
		pdfs: filepath.Join(base, "temp_pdf"),
		sigs: filepath.Join(base, "temp_signatures"),
		hist: filepath.Join(base, "edit_history"),
	}
	reg := NewRegistry(Stores{
		Documents:  local.New(roots.docs),
		Renditions: local.New(roots.pdfs),
		Signatures: local.New(roots.sigs),
		History:    local.New(roots.hist),
	})
	return reg, roots
}

func putFile(t *testing.T, reg *Registry, st *sessions.State, kind Kind, name string) string {
	t.Helper()
	obj, err := reg.Put(context.Background(), st, kind, name, bytes.NewReader([]byte("data")))
	if err != nil {
		t.Fatalf("Put %s: %v", name, err)
	}
	return obj.Path
}

func assertEmptyOrMissing(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected %s to be empty, found %d entries", dir, len(entries))
	}
}

func TestRecordAndLookup(t *testing.T) {
	reg, _ := newTestRegistry(t)
	st := sessions.New("sess-1")

	docPath := putFile(t, reg, st, KindDocument, "MSA_Acme_1.docx")
	pdfPath := putFile(t, reg, st, KindRendition, "MSA_Acme_1.pdf")
	reg.RecordArtifact(st, "MSA_Acme_1.pdf", docPath, pdfPath)
	if !st.Modified {
		t.Fatalf("expected RecordArtifact to mark session modified")
	}

	got, ok := reg.Lookup(st, KindRendition, "MSA_Acme_1.pdf")
	if !ok || got != pdfPath {
		t.Fatalf("expected rendition lookup hit, got %q %v", got, ok)
	}
	art, ok := reg.Artifact(st, "MSA_Acme_1.pdf")
	if !ok || art.DocumentPath != docPath || art.RenditionPath != pdfPath {
		t.Fatalf("unexpected artifact %+v %v", art, ok)
	}
	if _, ok := reg.Lookup(st, KindRendition, "MSA_Other.pdf"); ok {
		t.Fatalf("expected miss for unknown filename")
	}
}

func TestLookupTreatsMissingFileAsNotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)
	st := sessions.New("sess-1")

	path := putFile(t, reg, st, KindSignature, "chervic_abc.png")
	reg.RecordSignature(st, "chervic_abc.png", path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := reg.Lookup(st, KindSignature, "chervic_abc.png"); ok {
		t.Fatalf("expected miss when file is gone")
	}
}

func TestAppendHistoryAccumulates(t *testing.T) {
	reg, _ := newTestRegistry(t)
	st := sessions.New("sess-1")
	ctx := context.Background()

	reg.AppendHistory(ctx, st, "MSA_Acme_1.pdf", "jo", Changes{
		FieldsUpdated:   map[string]string{"name": "Acme"},
		SignaturesAdded: SignaturesAdded{Chervic: true, Customer: true},
	})
	reg.AppendHistory(ctx, st, "MSA_Acme_1.pdf", "sam", Changes{})

	entries, ok := reg.History(st, "MSA_Acme_1.pdf")
	if !ok {
		t.Fatalf("expected history to be recorded")
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Username != "jo" || !entries[0].Changes.SignaturesAdded.Customer {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if filepath.Base(st.History["MSA_Acme_1.pdf"]) != "MSA_Acme_1.pdf_history.json" {
		t.Fatalf("unexpected history path %q", st.History["MSA_Acme_1.pdf"])
	}

	raw, err := os.ReadFile(st.History["MSA_Acme_1.pdf"])
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if !bytes.Contains(raw, []byte("\n  {\n    \"timestamp\"")) {
		t.Fatalf("expected two-space indented json, got:\n%s", raw)
	}
}

func TestAppendHistoryRecoversFromCorruptLog(t *testing.T) {
	reg, _ := newTestRegistry(t)
	st := sessions.New("sess-1")
	ctx := context.Background()

	if _, err := reg.Put(ctx, st, KindHistory, HistoryFileName("MSA_Acme_1.pdf"), bytes.NewReader([]byte("{not json"))); err != nil {
		t.Fatalf("seed corrupt log: %v", err)
	}
	reg.AppendHistory(ctx, st, "MSA_Acme_1.pdf", "jo", Changes{})

	entries, ok := reg.History(st, "MSA_Acme_1.pdf")
	if !ok || len(entries) != 1 {
		t.Fatalf("expected corrupt log to be replaced with one entry, got %d %v", len(entries), ok)
	}
}

func TestTeardownRemovesEverything(t *testing.T) {
	reg, roots := newTestRegistry(t)
	st := sessions.New("sess-1")
	st.SetUser(sessions.User{ID: "u-1", Username: "jo"}, map[string]string{"token": "x"})
	ctx := context.Background()

	sig1 := putFile(t, reg, st, KindSignature, "chervic_1.png")
	sig2 := putFile(t, reg, st, KindSignature, "customer_2.png")
	reg.RecordSignature(st, "chervic_1.png", sig1)
	reg.RecordSignature(st, "customer_2.png", sig2)
	docPath := putFile(t, reg, st, KindDocument, "MSA_Acme_1.docx")
	pdfPath := putFile(t, reg, st, KindRendition, "MSA_Acme_1.pdf")
	reg.RecordArtifact(st, "MSA_Acme_1.pdf", docPath, pdfPath)
	reg.AppendHistory(ctx, st, "MSA_Acme_1.pdf", "jo", Changes{})
	untracked := putFile(t, reg, st, KindDocument, "stray.tmp")

	snapshot := *st
	snapshot.Signatures = map[string]string{"chervic_1.png": sig1, "customer_2.png": sig2}
	snapshot.Documents = map[string]string{"MSA_Acme_1.pdf": docPath}
	snapshot.Renditions = map[string]string{"MSA_Acme_1.pdf": pdfPath}
	snapshot.History = map[string]string{"MSA_Acme_1.pdf": st.History["MSA_Acme_1.pdf"]}

	reg.Teardown(ctx, st)

	for _, dir := range []string{roots.docs, roots.pdfs, roots.sigs, roots.hist} {
		assertEmptyOrMissing(t, dir)
	}
	if _, err := os.Stat(untracked); !os.IsNotExist(err) {
		t.Fatalf("expected untracked file swept with its directory")
	}
	if !st.Destroyed || st.User != nil || len(st.Signatures) != 0 {
		t.Fatalf("expected cleared state, got %+v", st)
	}

	for _, kind := range kinds {
		for name := range records(&snapshot, kind) {
			if _, ok := reg.Lookup(&snapshot, kind, name); ok {
				t.Fatalf("expected %s %s to be not found after teardown", kind, name)
			}
		}
	}
}

func TestTeardownLeavesOtherSessionsAlone(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a := sessions.New("sess-a")
	b := sessions.New("sess-b")

	pathA := putFile(t, reg, a, KindSignature, "chervic_1.png")
	reg.RecordSignature(a, "chervic_1.png", pathA)
	pathB := putFile(t, reg, b, KindSignature, "chervic_1.png")
	reg.RecordSignature(b, "chervic_1.png", pathB)

	reg.Teardown(context.Background(), a)

	if _, ok := reg.Lookup(b, KindSignature, "chervic_1.png"); !ok {
		t.Fatalf("expected other session's signature to survive teardown")
	}
}

func TestTeardownAfterIDRotationRemovesEarlierFiles(t *testing.T) {
	reg, roots := newTestRegistry(t)
	st := sessions.New("sess-before")
	early := putFile(t, reg, st, KindSignature, "stray.png")
	putFile(t, reg, st, KindDocument, "stray.docx")

	st.ID = "sess-after"
	late := putFile(t, reg, st, KindSignature, "later.png")
	if filepath.Dir(early) != filepath.Dir(late) {
		t.Fatalf("expected one directory across id rotation, got %s and %s", filepath.Dir(early), filepath.Dir(late))
	}

	reg.Teardown(context.Background(), st)

	for _, dir := range []string{roots.docs, roots.sigs} {
		assertEmptyOrMissing(t, dir)
	}
}

func TestSweepStaleRemovesAbandonedSessions(t *testing.T) {
	reg, roots := newTestRegistry(t)
	abandoned := sessions.New("sess-abandoned")
	active := sessions.New("sess-active")

	oldSig := putFile(t, reg, abandoned, KindSignature, "chervic_1.png")
	oldDoc := putFile(t, reg, abandoned, KindDocument, "MSA_Acme_1.docx")
	live := putFile(t, reg, active, KindSignature, "chervic_1.png")

	stale := time.Now().Add(-72 * time.Hour)
	for _, p := range []string{oldSig, filepath.Dir(oldSig), oldDoc, filepath.Dir(oldDoc)} {
		if err := os.Chtimes(p, stale, stale); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	if n := reg.SweepStale(context.Background(), time.Now().Add(-24*time.Hour)); n != 2 {
		t.Fatalf("expected 2 directories swept, got %d", n)
	}
	assertEmptyOrMissing(t, roots.docs)
	if _, err := os.Stat(oldSig); !os.IsNotExist(err) {
		t.Fatalf("expected abandoned signature swept, stat err=%v", err)
	}
	if _, err := os.Stat(live); err != nil {
		t.Fatalf("expected active session file kept: %v", err)
	}
}
