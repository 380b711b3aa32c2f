package mockserver

import (
	"crypto/rand"
	"path/filepath"
	"strings"
)

// Media synthesis defaults, matching the constants teremock's
// server/routes/common.rs documents.
const (
	fileIDLength       = 16
	fileUniqueIDLength = 8
	defaultDimension   = 100
	defaultDurationSec = 1
	defaultVideoMIME   = "video/mp4"
	defaultAudioMIME   = "audio/mp3"
	defaultAnimMIME    = "image/gif"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomAlphanumeric(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphanumeric[int(b)%len(alphanumeric)]
	}
	return string(out)
}

func generateFileID() string       { return randomAlphanumeric(fileIDLength) }
func generateFileUniqueID() string { return randomAlphanumeric(fileUniqueIDLength) }

// guessMIMEFromFilename is used for document uploads, which carry no
// explicit mime_type field as often as the other media kinds do.
func guessMIMEFromFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".zip":
		return "application/zip"
	default:
		return "application/octet-stream"
	}
}

func defaultFilenameForKind(kind string) string {
	switch kind {
	case "photo":
		return "no_name.jpg"
	case "video":
		return "no_name.mp4"
	case "animation":
		return "no_name.gif"
	case "audio":
		return "no_name.mp3"
	case "voice":
		return "no_name.ogg"
	case "video_note":
		return "no_name.mp4"
	default:
		return "no_name"
	}
}
