package mockserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
)

// postMultipart posts a single named file attachment plus any scalar form
// fields to endpoint, mirroring how a real bot client uploads media.
func postMultipart(t *testing.T, port int, endpoint, field, fileName string, data []byte, scalars map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range scalars {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField %s: %v", k, err)
		}
	}
	part, err := w.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write attachment: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	url := fmt.Sprintf("http://127.0.0.1:%d/bot1234:TEST/%s", port, endpoint)
	resp, err := http.Post(url, w.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", endpoint, err)
	}
	return resp
}

// TestHandleSendPhoto_FileRegistryPathIsUploadedFilename exercises the
// upload-then-GetFile round trip spec.md §8 calls out: the file registry's
// synthetic path must equal the name the client uploaded the file under,
// not the server-generated file id.
func TestHandleSendPhoto_FileRegistryPathIsUploadedFilename(t *testing.T) {
	state := NewState()
	srv := NewServer(testBotUser(), state, nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postMultipart(t, mgr.Port, "sendPhoto", "photo", "vacation.jpg", []byte("fake jpeg bytes"), map[string]string{
		"chat_id": "12345",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	var sendResult struct {
		Result struct {
			Photo []struct {
				FileID string `json:"file_id"`
			} `json:"photo"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sendResult); err != nil {
		t.Fatalf("decode sendPhoto response: %v", err)
	}
	if len(sendResult.Result.Photo) == 0 {
		t.Fatalf("sendPhoto result has no photo sizes")
	}
	fileID := sendResult.Result.Photo[0].FileID

	getResp := postJSON(t, mgr.Port, "getFile", map[string]any{"file_id": fileID})
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(getResp.Body)
		t.Fatalf("getFile status = %d, want 200: %s", getResp.StatusCode, body)
	}

	var getResult struct {
		Result struct {
			FilePath string `json:"file_path"`
		} `json:"result"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&getResult); err != nil {
		t.Fatalf("decode getFile response: %v", err)
	}
	if getResult.Result.FilePath != "vacation.jpg" {
		t.Fatalf("file_path = %q, want %q", getResult.Result.FilePath, "vacation.jpg")
	}
}

// TestHandleSendDocument_FileRegistryPathIsUploadedFilename checks the same
// property for SendDocument, whose message also echoes the filename onto
// the stored Document itself.
func TestHandleSendDocument_FileRegistryPathIsUploadedFilename(t *testing.T) {
	state := NewState()
	srv := NewServer(testBotUser(), state, nil, nil)
	mgr, err := Start(srv)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer mgr.Close()

	resp := postMultipart(t, mgr.Port, "sendDocument", "document", "report.pdf", []byte("fake pdf bytes"), map[string]string{
		"chat_id": "12345",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	var sendResult struct {
		Result struct {
			Document struct {
				FileID   string `json:"file_id"`
				FileName string `json:"file_name"`
			} `json:"document"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sendResult); err != nil {
		t.Fatalf("decode sendDocument response: %v", err)
	}
	if sendResult.Result.Document.FileName != "report.pdf" {
		t.Fatalf("document file_name = %q, want %q", sendResult.Result.Document.FileName, "report.pdf")
	}

	getResp := postJSON(t, mgr.Port, "getFile", map[string]any{"file_id": sendResult.Result.Document.FileID})
	defer getResp.Body.Close()

	var getResult struct {
		Result struct {
			FilePath string `json:"file_path"`
		} `json:"result"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&getResult); err != nil {
		t.Fatalf("decode getFile response: %v", err)
	}
	if getResult.Result.FilePath != "report.pdf" {
		t.Fatalf("file_path = %q, want %q", getResult.Result.FilePath, "report.pdf")
	}
}
