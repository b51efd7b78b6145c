package certificate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

type Renderer struct {
	Dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

func FileName(id int64) string {
	return fmt.Sprintf("certificate_%d.pdf", id)
}

func (r *Renderer) Path(id int64) string {
	return filepath.Join(r.Dir, FileName(id))
}

// Render writes the certificate PDF and returns its path. The document is
// written to a temp file and renamed into place, so readers only ever see a
// complete file; concurrent renders of the same id resolve last writer wins.
// Output depends only on the record, so repeated renders are byte-identical.
func (r *Renderer) Render(c CertificateRequest) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", err
	}
	filePath := r.Path(c.ID)

	tmp, err := os.CreateTemp(r.Dir, FileName(c.ID)+".*.tmp")
	if err != nil {
		return "", err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := Document(c).Output(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("render certificate %d: %w", c.ID, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), filePath); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return filePath, nil
}

// Document lays out the single-page certificate.
func Document(c CertificateRequest) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	if !c.CreatedAt.IsZero() {
		pdf.SetCreationDate(c.CreatedAt)
		pdf.SetModificationDate(c.CreatedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := fmt.Sprintf("Certificate of %s", c.CertificateType)
	pdf.SetTitle(title, true)

	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.CellFormat(200, 10, tr(fmt.Sprintf("Issued to: %s", c.StudentID)), "", 1, "C", false, 0, "")
	return pdf
}
