package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/omni-summarizer/internal/pipeline"
)

const audioMIMEType = "audio/mp4"

func (c *implClient) newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

// Upload pushes a local media file to the Gemini Files API and returns an
// opaque handle carrying its remote identity.
func (c *implClient) Upload(ctx context.Context, apiKey, path string) (*pipeline.MediaHandle, error) {
	client, err := c.newClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	file, err := client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: audioMIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	c.logger.Debug(ctx, "uploaded %s as %s", path, file.Name)
	return &pipeline.MediaHandle{
		Name:     file.Name,
		URI:      file.URI,
		MIMEType: file.MIMEType,
	}, nil
}

// Status re-reads the remote file and maps its lifecycle state.
func (c *implClient) Status(ctx context.Context, apiKey string, handle *pipeline.MediaHandle) (pipeline.MediaState, error) {
	client, err := c.newClient(ctx, apiKey)
	if err != nil {
		return "", err
	}

	file, err := client.Files.Get(ctx, handle.Name, nil)
	if err != nil {
		return "", fmt.Errorf("get file %s: %w", handle.Name, err)
	}

	switch file.State {
	case genai.FileStateProcessing:
		return pipeline.MediaPending, nil
	case genai.FileStateFailed:
		return pipeline.MediaFailed, nil
	default:
		return pipeline.MediaReady, nil
	}
}

// Generate invokes the model with the assembled request. Media, when
// present, is referenced by its uploaded URI rather than inlined.
func (c *implClient) Generate(ctx context.Context, apiKey string, req pipeline.GenerateRequest) (string, error) {
	client, err := c.newClient(ctx, apiKey)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if req.Media != nil {
		parts = append(parts, genai.NewPartFromURI(req.Media.URI, req.Media.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
