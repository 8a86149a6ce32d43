package pipeline

import (
	"context"
	"fmt"
	"time"
)

// basePrompt is the fixed instruction template. The first-line filename
// directive (`# 檔名：...`) is what the export layer parses the artifact
// name from.
const basePrompt = "你是一位全能的資訊整理專家。請為我撰寫一份「懶人包摘要」。" +
	"\n\n【要求】：\n" +
	"1. **檔名指令(重要)**：請根據內容，取一個最適合存檔的檔名。並在回應的**第一行**，嚴格依照此格式輸出：`# 檔名：[你的檔名]`。\n" +
	"2. **直接輸出**：請直接開始輸出內容，**絕對不要**有任何開場白（如「好的」、「這是我整理的...」等廢話）。\n" +
	"3. **語言**：全部翻譯並整理成 **繁體中文**。\n" +
	"4. **格式**：\n" +
	"   - **一言以蔽之**：用一句話總結核心主旨。\n" +
	"   - **關鍵重點**：列出 3-5 個最重要的資訊點 (Bullet points)。\n" +
	"   - **詳細摘要**：針對內容進行邏輯分段的詳細說明。\n" +
	"5. **語氣**：專業但輕鬆。"

// summarize builds the generation request and invokes the backend. Every
// exit path yields a summary; backend faults are recovered into a
// user-visible failure message, never propagated.
func (p *implPipeline) summarize(ctx context.Context, st *State) Update {
	logs := []string{"--- [step 3] generating summary ---"}

	if st.Err != "" && st.Media == nil {
		logs = append(logs, "previous step failed and no media fallback exists, skipping")
		return Update{Summary: strPtr("無法生成: " + st.Err), Logs: logs}
	}

	apiKey := st.APIKey
	keySource := "manual override"
	if apiKey == "" {
		apiKey = p.defaultKey
		keySource = "default .env"
	}
	if apiKey == "" {
		msg := ErrMissingAPIKey.Error()
		logs = append(logs, "no API key available")
		return Update{Summary: strPtr("錯誤：未設定 API Key"), Err: &msg, Logs: logs}
	}
	logs = append(logs, fmt.Sprintf("using key: %s (%s)", maskKey(apiKey), keySource))

	var req GenerateRequest
	switch {
	case st.Media != nil:
		logs = append(logs, "mode: audio")
		waitLogs, err := p.waitForMedia(ctx, apiKey, st.Media)
		logs = append(logs, waitLogs...)
		if err != nil {
			msg := err.Error()
			return Update{Summary: strPtr("AI 生成失敗: " + msg), Err: &msg, Logs: append(logs, "generation failed: "+msg)}
		}
		req = GenerateRequest{
			Prompt: basePrompt + "\n\n請根據附檔音訊摘要。",
			Media:  st.Media,
		}
	case st.Content != "":
		logs = append(logs, "mode: text")
		req = GenerateRequest{
			Prompt: fmt.Sprintf("%s\n\n來源：%s\n【內容】：\n%s", basePrompt, st.Category, st.Content),
		}
	default:
		logs = append(logs, "no content and no media, nothing to do")
		return Update{Summary: strPtr("無內容可處理"), Logs: logs}
	}

	logs = append(logs, "calling Gemini...")
	text, err := p.gen.Generate(ctx, apiKey, req)
	if err != nil {
		msg := err.Error()
		return Update{Summary: strPtr("AI 生成失敗: " + msg), Err: &msg, Logs: append(logs, "generation failed: "+msg)}
	}

	logs = append(logs, "summary complete")
	return Update{Summary: &text, Logs: logs}
}

// waitForMedia blocks until the uploaded media leaves the pending state,
// polling at the configured interval. A poll timeout of zero waits
// indefinitely, matching the remote backend's own lifecycle.
func (p *implPipeline) waitForMedia(ctx context.Context, apiKey string, handle *MediaHandle) ([]string, error) {
	var logs []string

	interval := time.Duration(p.cfg.Gemini.PollInterval)
	timeout := time.Duration(p.cfg.Gemini.PollTimeout)

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	state, err := p.uploads.Status(ctx, apiKey, handle)
	if err != nil {
		return logs, err
	}
	if state == MediaPending {
		logs = append(logs, "remote media still processing, waiting...")
	}

	for state == MediaPending {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return logs, fmt.Errorf("%w: timed out after %s", ErrRemoteMedia, timeout)
		}
		select {
		case <-ctx.Done():
			return logs, ctx.Err()
		case <-time.After(interval):
		}
		state, err = p.uploads.Status(ctx, apiKey, handle)
		if err != nil {
			return logs, err
		}
	}

	if state == MediaFailed {
		return logs, fmt.Errorf("%w: backend could not process the uploaded media", ErrRemoteMedia)
	}
	return logs, nil
}

// maskKey hides the middle of an API key for log output.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "**********" + key[len(key)-4:]
}
