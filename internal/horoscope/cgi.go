package horoscope

import (
	"bytes"
	"context"
	"io"
)

// ErrorBody is the fixed page sent with every 500 response. It never carries
// diagnostic detail.
const ErrorBody = "<html><head><title>500 Internal Server Error</title></head>" +
	"<body><h1>500 Internal Server Error</h1>" +
	"<p>Une erreur est survenue lors de l'exécution du script CGI.</p>" +
	"</body></html>"

const (
	cgiSuccessHeader = "Content-Type: text/html\r\n\r\n"
	cgiErrorHeader   = "Status: 500 Internal Server Error\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n"
)

// CGIResponse returns the complete CGI output for a pipeline outcome: the
// rendered document when err is nil, the fixed 500 response otherwise.
func CGIResponse(doc string, err error) []byte {
	var buf bytes.Buffer
	if err != nil {
		buf.WriteString(cgiErrorHeader)
		buf.WriteString(ErrorBody)
		return buf.Bytes()
	}
	buf.Grow(len(cgiSuccessHeader) + len(doc))
	buf.WriteString(cgiSuccessHeader)
	buf.WriteString(doc)
	return buf.Bytes()
}

// WriteCGI writes the response for a pipeline outcome to w in one call, so a
// failure can never follow partially written success output.
func WriteCGI(w io.Writer, doc string, err error) error {
	_, werr := w.Write(CGIResponse(doc, err))
	return werr
}

// RunCGI executes one generation and writes the CGI response to w.
func (s *Service) RunCGI(ctx context.Context, w io.Writer) error {
	res, err := s.Generate(ctx)
	if err != nil {
		return WriteCGI(w, "", err)
	}
	return WriteCGI(w, res.Document, nil)
}
