package material

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeParts(t *testing.T, body []byte, contentType string) map[string][]byte {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	parts := map[string][]byte{}
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		b, err := io.ReadAll(p)
		require.NoError(t, err)
		parts[p.FormName()] = b
	}
	return parts
}

func TestEnvelopeWithoutFileSendsNoFilePart(t *testing.T) {
	d := DraftFromMaterial(StudyMaterial{Title: "T", Type: TypeJob, Category: CategoryMNC, Content: Content{File: "/media/x.pdf"}})
	env, err := NewEnvelope(d, nil)
	require.NoError(t, err)
	assert.False(t, env.HasFile())

	body, ct, err := env.Encode()
	require.NoError(t, err)
	parts := decodeParts(t, body, ct)

	assert.NotContains(t, parts, PartFile)
	require.Contains(t, parts, PartData)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(parts[PartData], &decoded))
	assert.Equal(t, "T", decoded["title"])
	content, ok := decoded["content"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, content, "file", "the stored file reference is never echoed back")
}

func TestEnvelopeWithFileReplacesIt(t *testing.T) {
	env, err := NewEnvelope(NewDraft(), &Upload{Filename: `C:\docs\notes.pdf`, Data: []byte("%PDF")})
	require.NoError(t, err)
	require.True(t, env.HasFile())

	body, ct, err := env.Encode()
	require.NoError(t, err)
	parts := decodeParts(t, body, ct)

	assert.Equal(t, []byte("%PDF"), parts[PartFile])
	assert.Contains(t, string(body), `filename="notes.pdf"`)
}

func TestEnvelopeIgnoresEmptyUpload(t *testing.T) {
	env, err := NewEnvelope(NewDraft(), &Upload{Filename: "empty.txt"})
	require.NoError(t, err)
	assert.False(t, env.HasFile())
}
