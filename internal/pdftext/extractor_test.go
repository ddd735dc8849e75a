package pdftext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtract_Success(t *testing.T) {
	runner := &stubRunner{stdout: []byte("page one text\fpage two text")}
	e := NewExtractorWithRunner(Config{}, runner, nil)

	res, err := e.Extract(context.Background(), "/tmp/referral.pdf")

	require.NoError(t, err)
	assert.Equal(t, "page one text\fpage two text", res.Text)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "pdftotext", runner.gotName)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "/tmp/referral.pdf", "-"}, runner.gotArgs)
}

func TestExtract_CommandFailure(t *testing.T) {
	runner := &stubRunner{stderr: []byte("Syntax Error: broken xref"), err: errors.New("exit status 1")}
	e := NewExtractorWithRunner(Config{Pdftotext: "/usr/bin/pdftotext"}, runner, nil)

	res, err := e.Extract(context.Background(), "/tmp/bad.pdf")

	require.Error(t, err)
	assert.Contains(t, res.Warnings[0], "broken xref")
}

func TestExtract_EmptyTextLayerIsAFailure(t *testing.T) {
	runner := &stubRunner{stdout: []byte("  \n \f ")}
	e := NewExtractorWithRunner(Config{}, runner, nil)

	_, err := e.Extract(context.Background(), "/tmp/scanned.pdf")
	assert.Error(t, err)
}
