package mockserver

import (
	"fmt"
	"io"
	"net/http"
)

// maxMultipartMemory bounds the in-memory buffer multipart parsing is
// allowed to use before spilling to temp files; file bodies here are test
// fixtures, never production uploads, so a generous fixed bound is simpler
// than a streaming extractor.
const maxMultipartMemory = 32 << 20

// Attachment is one uploaded file part: its declared filename and raw
// bytes. The server never inspects file contents, only records size.
type Attachment struct {
	FileName string
	Data     []byte
}

// extractMultipart parses a multipart/form-data request body into its
// scalar text fields and its file attachments, keyed by form field name.
func extractMultipart(r *http.Request) (scalars map[string]string, attachments map[string]Attachment, err error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}

	scalars = make(map[string]string)
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			scalars[key] = values[0]
		}
	}

	attachments = make(map[string]Attachment)
	for field, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		f, openErr := fh.Open()
		if openErr != nil {
			return nil, nil, fmt.Errorf("open attachment %s: %w", field, openErr)
		}
		data, readErr := io.ReadAll(f)
		f.Close()
		if readErr != nil {
			return nil, nil, fmt.Errorf("read attachment %s: %w", field, readErr)
		}
		attachments[field] = Attachment{FileName: fh.Filename, Data: data}
	}
	return scalars, attachments, nil
}

// resolveUpload finds the file attachment for a media field, falling back
// to treating a same-named scalar value as a passthrough file id when no
// attachment part was sent. Returns ok=false (callers render HTTP 400) when
// neither path yields a usable file.
func resolveUpload(scalars map[string]string, attachments map[string]Attachment, field string) (data []byte, fileName string, passthroughFileID string, ok bool) {
	if att, present := attachments[field]; present {
		name := att.FileName
		if name == "" {
			name = defaultFilenameForKind(field)
		}
		return att.Data, name, "", true
	}
	if v, present := scalars[field]; present && v != "" {
		return nil, defaultFilenameForKind(field), v, true
	}
	return nil, "", "", false
}
