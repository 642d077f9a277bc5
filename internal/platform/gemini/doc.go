// Package gemini implements generation.Generator with Google's Gemini API.
//
// A prompt is rendered from a text/template (embedded by default, or loaded
// from llm.prompt_template_path), sent with a JSON response MIME type, and
// the reply is decoded as {"cards":[{"front":...,"back":...}]}. Transient API
// failures are retried with exponential backoff and jitter; safety blocks and
// malformed replies are not retried.
package gemini
